// Package seed writes the demo dataset into collections found empty.
// Seeding is an explicit startup step gated by SEED_DEMO_DATA; it is
// never triggered implicitly by a read path.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/afriblend/afriblend-backend/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Enabled reports whether the SEED_DEMO_DATA flag is set.
func Enabled() bool {
	b, err := strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))
	return err == nil && b
}

// Defaults bundles the singleton fallback values for store construction.
func Defaults() store.Defaults {
	return store.Defaults{
		Settings:     DefaultSettings(),
		Faqs:         DefaultFaqs(),
		Contact:      DefaultContact(),
		OurStory:     DefaultOurStory(),
		Notification: DefaultNotification(),
	}
}

// Demo populates every empty collection and missing singleton document.
// Collections that already hold data are left untouched, so running it
// against a live database is safe.
func Demo(ctx context.Context, open func(name string) *mongo.Collection) error {
	if err := seedCollection(ctx, open("categories"), toAny(demoCategories())); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedCollection(ctx, open("products"), toAny(demoProducts())); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedCollection(ctx, open("riders"), toAny(demoRiders())); err != nil {
		return fmt.Errorf("seed riders: %w", err)
	}

	if err := seedSingleton(ctx, open("settings"), "main", DefaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	content := open("content")
	if err := seedSingleton(ctx, content, "faqs", DefaultFaqs()); err != nil {
		return fmt.Errorf("seed faqs: %w", err)
	}
	if err := seedSingleton(ctx, content, "contactInfo", DefaultContact()); err != nil {
		return fmt.Errorf("seed contact info: %w", err)
	}
	if err := seedSingleton(ctx, content, "ourStory", DefaultOurStory()); err != nil {
		return fmt.Errorf("seed our story: %w", err)
	}
	if err := seedSingleton(ctx, content, "notification", DefaultNotification()); err != nil {
		return fmt.Errorf("seed notification: %w", err)
	}
	return nil
}

func seedCollection(ctx context.Context, col *mongo.Collection, docs []any) error {
	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("seeded %d demo documents into %s", len(docs), col.Name())
	return nil
}

func seedSingleton[T any](ctx context.Context, col *mongo.Collection, docID string, value T) error {
	err := col.FindOne(ctx, bson.M{"_id": docID}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	doc, err := withID(docID, value)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return err
	}
	log.Printf("seeded %s/%s", col.Name(), docID)
	return nil
}

// withID wraps the value with the fixed _id singleton documents use.
func withID[T any](docID string, value T) (bson.D, error) {
	raw, err := bson.Marshal(value)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: "_id", Value: docID}}, doc...), nil
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
