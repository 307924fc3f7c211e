package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/afriblend/afriblend-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Categories mirrors the categories collection. Deletion is refused
// while any product still references the category; the check runs here
// rather than in the UI because the remote store has no referential
// integrity of its own.
type Categories struct {
	watcher
	col      *mongo.Collection
	products *Products
	mu       sync.RWMutex
	items    []models.Category
}

func NewCategories(col *mongo.Collection, products *Products) *Categories {
	return &Categories{col: col, products: products}
}

func (s *Categories) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	s.begin(ctx, s.col, s.reload)
	return nil
}

func (s *Categories) reload(ctx context.Context) error {
	items, err := loadAll[models.Category](ctx, s.col, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Categories) All() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Categories) ByID(id bson.ObjectID) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.Id == id {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("category %s: %w", id.Hex(), ErrNotFound)
}

func (s *Categories) Add(ctx context.Context, name string) (models.Category, error) {
	cat := models.Category{Id: bson.NewObjectID(), Name: strings.TrimSpace(name)}
	if _, err := s.col.InsertOne(ctx, cat); err != nil {
		return models.Category{}, err
	}
	s.mu.Lock()
	s.items = append(s.items, cat)
	s.mu.Unlock()
	return cat, nil
}

func (s *Categories) Update(ctx context.Context, id bson.ObjectID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return models.Category{}, err
	}
	if res.MatchedCount == 0 {
		return models.Category{}, fmt.Errorf("category %s: %w", id.Hex(), ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Id == id {
			s.items[i].Name = name
			return s.items[i], nil
		}
	}
	return models.Category{Id: id, Name: name}, nil
}

// Delete removes the category unless a product still references it, in
// which case the returned error names the category for the admin.
func (s *Categories) Delete(ctx context.Context, id bson.ObjectID) error {
	cat, err := s.ByID(id)
	if err != nil {
		return err
	}
	if s.products.anyInCategory(id) {
		return fmt.Errorf("%w: %q is referenced by at least one product", ErrCategoryInUse, cat.Name)
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), ErrNotFound)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
