package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Singleton mirrors one configuration document inside a collection.
// Until the document exists remotely, Get reports the fallback value;
// Update replaces the whole document, creating it if needed.
type Singleton[T any] struct {
	watcher
	col   *mongo.Collection
	docID string
	mu    sync.RWMutex
	value T
}

func NewSingleton[T any](col *mongo.Collection, docID string, fallback T) *Singleton[T] {
	return &Singleton[T]{col: col, docID: docID, value: fallback}
}

func (s *Singleton[T]) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("load %s/%s: %w", s.col.Name(), s.docID, err)
	}
	s.begin(ctx, s.col, s.reload)
	return nil
}

func (s *Singleton[T]) reload(ctx context.Context) error {
	var v T
	err := s.col.FindOne(ctx, bson.M{"_id": s.docID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Keep the fallback until the document is first written.
		return nil
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	return nil
}

func (s *Singleton[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Singleton[T]) Update(ctx context.Context, v T) (T, error) {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": s.docID}, v, opts); err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	return v, nil
}
