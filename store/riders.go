package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/afriblend/afriblend-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Riders mirrors the riders collection. Deleting a rider first clears
// its assignment from every order so no order points at a courier that
// no longer exists.
type Riders struct {
	watcher
	col    *mongo.Collection
	orders *Orders
	mu     sync.RWMutex
	items  []models.Rider
}

func NewRiders(col *mongo.Collection, orders *Orders) *Riders {
	return &Riders{col: col, orders: orders}
}

func (s *Riders) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("load riders: %w", err)
	}
	s.begin(ctx, s.col, s.reload)
	return nil
}

func (s *Riders) reload(ctx context.Context) error {
	items, err := loadAll[models.Rider](ctx, s.col, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Riders) All() []models.Rider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Rider, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Riders) ByID(id bson.ObjectID) (models.Rider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.items {
		if r.Id == id {
			return r, nil
		}
	}
	return models.Rider{}, fmt.Errorf("rider %s: %w", id.Hex(), ErrRiderNotFound)
}

func (s *Riders) Add(ctx context.Context, name, phone string) (models.Rider, error) {
	rider := models.Rider{Id: bson.NewObjectID(), Name: name, Phone: phone}
	if _, err := s.col.InsertOne(ctx, rider); err != nil {
		return models.Rider{}, err
	}
	s.mu.Lock()
	s.items = append(s.items, rider)
	s.mu.Unlock()
	return rider, nil
}

func (s *Riders) Update(ctx context.Context, rider models.Rider) (models.Rider, error) {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": rider.Id}, rider)
	if err != nil {
		return models.Rider{}, err
	}
	if res.MatchedCount == 0 {
		return models.Rider{}, fmt.Errorf("rider %s: %w", rider.Id.Hex(), ErrRiderNotFound)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Id == rider.Id {
			s.items[i] = rider
			break
		}
	}
	s.mu.Unlock()
	return rider, nil
}

// Delete nullifies the rider's order assignments, then removes it.
func (s *Riders) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.ByID(id); err != nil {
		return err
	}
	if err := s.orders.ClearRider(ctx, id); err != nil {
		return fmt.Errorf("clear rider assignments: %w", err)
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("rider %s: %w", id.Hex(), ErrRiderNotFound)
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
