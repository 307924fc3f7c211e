package store

import (
	"context"
	"testing"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	dresses := models.Category{Id: bson.NewObjectID(), Name: "Dresses"}
	products := &Products{items: []models.Product{
		{Id: bson.NewObjectID(), Name: "Ankara Gown", CategoryId: dresses.Id},
	}}
	s := &Categories{products: products, items: []models.Category{dresses}}

	err := s.Delete(context.Background(), dresses.Id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.Contains(t, err.Error(), "Dresses", "the message names the category")
}

func TestCategoryDeleteUnknown(t *testing.T) {
	s := &Categories{products: &Products{}}
	err := s.Delete(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductVisibilityFilter(t *testing.T) {
	hidden := false
	s := &Products{items: []models.Product{
		{Id: bson.NewObjectID(), Name: "Shown"},
		{Id: bson.NewObjectID(), Name: "Hidden", IsVisible: &hidden},
	}}

	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Shown", visible[0].Name)
	assert.Len(t, s.All(), 2)
}
