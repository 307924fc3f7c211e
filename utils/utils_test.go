package utils

import (
	"strings"
	"testing"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "ankara-infinity-gown", GenerateSlug("Ankara Infinity Gown"))
	assert.Equal(t, "cafe-creme", GenerateSlug("Café Crème"))
	assert.Equal(t, "men-s-wear", GenerateSlug("Men's Wear!"))
	assert.Equal(t, "a-b", GenerateSlug("--a  b--"))
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "+254712345678", StripWhitespace(" +254 712 345 678 "))
	assert.Equal(t, "", StripWhitespace("   \t\n"))
}

func TestResolveRole(t *testing.T) {
	assert.Equal(t, models.RoleDeveloper, ResolveRole("dev@afriblend.co.ke"))
	assert.Equal(t, models.RoleDeveloper, ResolveRole("  DEV@example.com "))
	assert.Equal(t, models.RoleStoreOwner, ResolveRole("admin@afriblend.co.ke"))
	assert.Equal(t, models.RoleStoreOwner, ResolveRole("someone@else.com"), "any valid credential gets the lower tier")
}

func TestGenerateTrackingCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		code, err := GenerateTrackingCode()
		require.NoError(t, err)
		assert.Len(t, code, len("AFB")+9)
		assert.True(t, strings.HasPrefix(code, "AFB"))
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45, "codes should be effectively unique")
}
