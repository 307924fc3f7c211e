package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Products mirrors the products collection into an in-memory snapshot
// and writes all mutations through to the remote store.
type Products struct {
	watcher
	col   *mongo.Collection
	mu    sync.RWMutex
	items []models.Product
}

func NewProducts(col *mongo.Collection) *Products {
	return &Products{col: col}
}

func (s *Products) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	s.begin(ctx, s.col, s.reload)
	return nil
}

func (s *Products) reload(ctx context.Context) error {
	items, err := loadAll[models.Product](ctx, s.col, nil)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Products) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Visible returns the products shown on the public storefront.
func (s *Products) Visible() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.items))
	for _, p := range s.items {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Products) ByID(id bson.ObjectID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.Id == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
}

func (s *Products) BySlug(slug string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %q: %w", slug, ErrNotFound)
}

// Add derives the slug and SKU from the product name and a creation
// timestamp; rating and review count are written once as zero and never
// recomputed afterwards.
func (s *Products) Add(ctx context.Context, p models.Product) (models.Product, error) {
	name := p.Name
	if name == "" {
		name = "new-product"
	}
	ms := time.Now().UnixMilli()
	p.Id = bson.NewObjectID()
	p.Slug = fmt.Sprintf("%s-%d", utils.GenerateSlug(name), ms)
	p.SKU = fmt.Sprintf("AFB-NEW-%d", ms)
	p.Rating = 0
	p.ReviewCount = 0

	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, p)
	s.mu.Unlock()
	return p, nil
}

// Update replaces the whole document. The slug is always recomputed
// from the current name plus the id, even when only unrelated fields
// changed, so renaming (or merely re-saving) a product changes its
// public URL.
func (s *Products) Update(ctx context.Context, p models.Product) (models.Product, error) {
	p.Slug = fmt.Sprintf("%s-%s", utils.GenerateSlug(p.Name), p.Id.Hex())

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": p.Id}, p)
	if err != nil {
		return models.Product{}, err
	}
	if res.MatchedCount == 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", p.Id.Hex(), ErrNotFound)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Id == p.Id {
			s.items[i] = p
			break
		}
	}
	s.mu.Unlock()
	return p, nil
}

// Delete is a hard remove; products are never archived.
func (s *Products) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
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

// DecrementStock lowers the product's stock by qty, floored at zero.
func (s *Products) DecrementStock(ctx context.Context, id bson.ObjectID, qty int) error {
	p, err := s.ByID(id)
	if err != nil {
		return err
	}
	newStock := clampStock(p.Stock, qty)

	if _, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"stock": newStock}}); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Id == id {
			s.items[i].Stock = newStock
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// anyInCategory reports whether some product still references the
// category. Category deletion is refused while this holds.
func (s *Products) anyInCategory(id bson.ObjectID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.CategoryId == id {
			return true
		}
	}
	return false
}

func clampStock(stock, qty int) int {
	if n := stock - qty; n > 0 {
		return n
	}
	return 0
}

func logDecrementFailure(orderID bson.ObjectID, productID bson.ObjectID, err error) {
	log.Printf("order %s: stock decrement for product %s failed: %v", orderID.Hex(), productID.Hex(), err)
}
