package store

import (
	"context"
	"errors"

	"github.com/afriblend/afriblend-backend/database"
	"github.com/afriblend/afriblend-backend/models"
)

// Sentinel errors returned by store mutators. Every mutator reports its
// outcome as a typed result instead of leaving callers to guess from
// driver error strings.
var (
	ErrNotFound              = errors.New("not found")
	ErrCategoryInUse         = errors.New("category still in use")
	ErrRiderNotFound         = errors.New("rider not found")
	ErrTrackingCodeCollision = errors.New("could not generate a unique tracking code")
)

// Defaults supplies the fallback values singleton stores report until
// their backing document exists.
type Defaults struct {
	Settings     models.StoreSettings
	Faqs         models.FaqList
	Contact      models.ContactInfo
	OurStory     models.OurStoryContent
	Notification models.Notification
}

// Stores aggregates every live-synced store service. Construction wires
// the cross-store dependencies explicitly: orders decrement product
// stock, category deletion is blocked by referencing products, rider
// deletion clears rider assignments on orders.
type Stores struct {
	Products     *Products
	Orders       *Orders
	Categories   *Categories
	Riders       *Riders
	Settings     *Singleton[models.StoreSettings]
	Faqs         *Singleton[models.FaqList]
	Contact      *Singleton[models.ContactInfo]
	OurStory     *Singleton[models.OurStoryContent]
	Notification *Singleton[models.Notification]
}

func New(d Defaults) *Stores {
	products := NewProducts(database.OpenCollection("products"))
	orders := NewOrders(database.OpenCollection("orders"), products)
	contentCol := database.OpenCollection("content")
	return &Stores{
		Products:     products,
		Orders:       orders,
		Categories:   NewCategories(database.OpenCollection("categories"), products),
		Riders:       NewRiders(database.OpenCollection("riders"), orders),
		Settings:     NewSingleton(database.OpenCollection("settings"), "main", d.Settings),
		Faqs:         NewSingleton(contentCol, "faqs", d.Faqs),
		Contact:      NewSingleton(contentCol, "contactInfo", d.Contact),
		OurStory:     NewSingleton(contentCol, "ourStory", d.OurStory),
		Notification: NewSingleton(contentCol, "notification", d.Notification),
	}
}

type service interface {
	Start(ctx context.Context) error
	Stop()
}

func (s *Stores) services() []service {
	return []service{
		s.Products, s.Orders, s.Categories, s.Riders,
		s.Settings, s.Faqs, s.Contact, s.OurStory, s.Notification,
	}
}

// Start loads every snapshot and begins watching for remote changes.
func (s *Stores) Start(ctx context.Context) error {
	for _, svc := range s.services() {
		if err := svc.Start(ctx); err != nil {
			s.Stop()
			return err
		}
	}
	return nil
}

// Stop tears down all change-stream watchers.
func (s *Stores) Stop() {
	for _, svc := range s.services() {
		svc.Stop()
	}
}
