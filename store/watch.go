package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// watcher owns the lifecycle of a change-stream subscription. Stores
// embed it so the Start/Stop wiring reads the same everywhere.
type watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// begin tails the collection's change stream and calls reload after
// every remote change. A broken stream is logged and abandoned; the
// snapshot stays on its last known state until the next Start.
func (w *watcher) begin(ctx context.Context, col *mongo.Collection, reload func(context.Context) error) {
	wctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)

		cs, err := col.Watch(wctx, mongo.Pipeline{})
		if err != nil {
			log.Printf("watch %s: %v", col.Name(), err)
			return
		}
		defer cs.Close(context.Background())

		for cs.Next(wctx) {
			if err := reload(wctx); err != nil {
				log.Printf("reload %s: %v", col.Name(), err)
			}
		}
		if err := cs.Err(); err != nil && wctx.Err() == nil {
			log.Printf("watch %s closed: %v", col.Name(), err)
		}
	}()
}

func (w *watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	w.cancel = nil
}

// loadAll decodes every document in the collection, optionally sorted.
func loadAll[T any](ctx context.Context, col *mongo.Collection, sort bson.D) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
