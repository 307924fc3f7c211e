package cart

import (
	"testing"
	"time"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func product(name string, price float64, stock int) models.Product {
	return models.Product{
		Id:    bson.NewObjectID(),
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("SameVariantMergesQuantity", func(t *testing.T) {
		c := New()
		p := product("Ankara Gown", 120, 25)

		c.Add(p, "M", "Royal Blue")
		c.Add(p, "M", "Royal Blue")

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("DifferentVariantIsNewLine", func(t *testing.T) {
		c := New()
		p := product("Ankara Gown", 120, 25)

		c.Add(p, "M", "Royal Blue")
		c.Add(p, "L", "Royal Blue")
		c.Add(p, "M", "Sunset Orange")

		assert.Len(t, c.Items(), 3)
	})

	t.Run("NoTwoLinesShareATriple", func(t *testing.T) {
		c := New()
		a := product("A", 10, 5)
		b := product("B", 20, 5)

		c.Add(a, "S", "Red")
		c.Add(b, "S", "Red")
		c.Add(a, "S", "Red")
		c.Add(b, "M", "Red")

		type key struct {
			id          bson.ObjectID
			size, color string
		}
		seen := make(map[key]bool)
		for _, item := range c.Items() {
			k := key{item.Id, item.SelectedSize, item.SelectedColor}
			assert.False(t, seen[k], "duplicate line for %v", k)
			seen[k] = true
		}
	})

	t.Run("ExceedingStockIsAllowed", func(t *testing.T) {
		c := New()
		p := product("Scarce", 10, 1)
		for range 5 {
			c.Add(p, "One Size", "Red")
		}
		assert.Equal(t, 5, c.ItemCount())
	})
}

func TestCartRemove(t *testing.T) {
	c := New()
	p := product("Gown", 120, 25)
	c.Add(p, "M", "Blue")
	c.Add(p, "L", "Blue")

	c.Remove(p.Id, "M", "Blue")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].SelectedSize)

	// Removing a line that isn't there is a no-op.
	c.Remove(p.Id, "M", "Blue")
	assert.Len(t, c.Items(), 1)
}

func TestCartSetQuantity(t *testing.T) {
	c := New()
	p := product("Gown", 120, 25)
	c.Add(p, "M", "Blue")

	c.SetQuantity(p.Id, "M", "Blue", 4)
	assert.Equal(t, 4, c.ItemCount())

	c.SetQuantity(p.Id, "M", "Blue", 0)
	assert.Empty(t, c.Items(), "zero quantity removes the line")

	c.Add(p, "M", "Blue")
	c.SetQuantity(p.Id, "M", "Blue", -3)
	assert.Empty(t, c.Items(), "negative quantity removes the line")
}

func TestCartTotals(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		c := New()
		assert.Zero(t, c.Total())
		assert.Zero(t, c.ItemCount())
	})

	t.Run("CheckoutScenario", func(t *testing.T) {
		// One unit of A (price 100) and two of B (price 50): total 200.
		c := New()
		a := product("A", 100, 10)
		b := product("B", 50, 5)

		c.Add(a, "M", "Red")
		c.Add(b, "M", "Red")
		c.Add(b, "M", "Red")

		assert.Equal(t, 200.0, c.Total())
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("ClearResetsToZero", func(t *testing.T) {
		c := New()
		c.Add(product("A", 100, 10), "M", "Red")
		c.Clear()
		assert.Zero(t, c.Total())
		assert.Zero(t, c.ItemCount())
		assert.Empty(t, c.Items())
	})
}

func TestSessions(t *testing.T) {
	t.Run("UnknownTokenMintsFresh", func(t *testing.T) {
		s := NewSessions(time.Hour)
		c1, token := s.Get("")
		require.NotEmpty(t, token)

		c2, token2 := s.Get(token)
		assert.Equal(t, token, token2)
		assert.Same(t, c1, c2)
	})

	t.Run("SweepDropsIdleCarts", func(t *testing.T) {
		s := NewSessions(time.Minute)
		_, token := s.Get("")

		assert.Zero(t, s.Sweep(time.Now()))
		assert.Equal(t, 1, s.Sweep(time.Now().Add(2*time.Minute)))

		_, token2 := s.Get(token)
		assert.NotEqual(t, token, token2, "swept token is unknown again")
	})
}
