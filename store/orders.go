package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const trackingCodeAttempts = 5

// Orders mirrors the orders collection, newest first, and owns the
// order lifecycle: status and payment transitions, the fulfillment
// stock decrement, and rider dispatch.
type Orders struct {
	watcher
	col      *mongo.Collection
	products *Products
	mu       sync.RWMutex
	items    []models.Order
}

func NewOrders(col *mongo.Collection, products *Products) *Orders {
	return &Orders{col: col, products: products}
}

func (s *Orders) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	s.begin(ctx, s.col, s.reload)
	return nil
}

func (s *Orders) reload(ctx context.Context) error {
	items, err := loadAll[models.Order](ctx, s.col, bson.D{{Key: "orderDate", Value: -1}})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Orders) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.items))
	copy(out, s.items)
	return out
}

// Create persists a new order from the checkout's line items and fixed
// total, then prepends it to the snapshot so a lookup immediately after
// checkout finds it before the change stream echoes the insert.
func (s *Orders) Create(ctx context.Context, items []models.CartItem, total float64, details models.ClientDetails, paymentMethod string) (models.Order, error) {
	code, err := s.newTrackingCode()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		Id:            bson.NewObjectID(),
		TrackingId:    code,
		ClientDetails: details,
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPendingPayment,
		PaymentStatus: models.PaymentStatusUnpaid,
		OrderDate:     time.Now().UTC(),
		PaymentMethod: paymentMethod,
	}

	if _, err := s.col.InsertOne(ctx, order); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	s.items = append([]models.Order{order}, s.items...)
	s.mu.Unlock()
	return order, nil
}

// newTrackingCode generates a public tracking code and verifies it
// against every code already in the snapshot. Collisions are vanishingly
// rare, so a handful of retries is enough.
func (s *Orders) newTrackingCode() (string, error) {
	for range trackingCodeAttempts {
		code, err := utils.GenerateTrackingCode()
		if err != nil {
			return "", err
		}
		if _, err := s.ByTrackingId(code); err != nil {
			return code, nil
		}
	}
	return "", ErrTrackingCodeCollision
}

func (s *Orders) ByID(id bson.ObjectID) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.items {
		if o.Id == id {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id.Hex(), ErrNotFound)
}

// ByTrackingId matches the public tracking code case-insensitively.
func (s *Orders) ByTrackingId(code string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.items {
		if strings.EqualFold(o.TrackingId, code) {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %q: %w", code, ErrNotFound)
}

// ByPhone compares phone numbers with all whitespace stripped from both
// sides and returns every matching order; the track-by-phone flow
// disambiguates when more than one matches.
func (s *Orders) ByPhone(phone string) []models.Order {
	want := utils.StripWhitespace(phone)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0)
	for _, o := range s.items {
		if utils.StripWhitespace(o.ClientDetails.Phone) == want {
			out = append(out, o)
		}
	}
	return out
}

// SetStatus writes the new status and runs the fulfillment stock
// decrement when the transition enters (Delivered, Paid).
func (s *Orders) SetStatus(ctx context.Context, id bson.ObjectID, status models.OrderStatus) (models.Order, error) {
	before, err := s.ByID(id)
	if err != nil {
		return models.Order{}, err
	}
	delta := fulfillmentDelta(before, status, before.PaymentStatus)

	if _, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return models.Order{}, err
	}
	s.applyDelta(ctx, before.Id, delta)

	return s.mutate(before, func(o *models.Order) { o.Status = status }), nil
}

// SetPaymentStatus is the payment axis of the same transition; the
// decrement fires on whichever of the two writes completes the joint
// condition, and only on that one.
func (s *Orders) SetPaymentStatus(ctx context.Context, id bson.ObjectID, payment models.PaymentStatus) (models.Order, error) {
	before, err := s.ByID(id)
	if err != nil {
		return models.Order{}, err
	}
	delta := fulfillmentDelta(before, before.Status, payment)

	if _, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"paymentStatus": payment}}); err != nil {
		return models.Order{}, err
	}
	s.applyDelta(ctx, before.Id, delta)

	return s.mutate(before, func(o *models.Order) { o.PaymentStatus = payment }), nil
}

// UpdateClientDetails edits the denormalized client copy only. It never
// touches status or payment, so re-saving a fulfilled order here cannot
// re-fire the stock decrement.
func (s *Orders) UpdateClientDetails(ctx context.Context, id bson.ObjectID, details models.ClientDetails) (models.Order, error) {
	before, err := s.ByID(id)
	if err != nil {
		return models.Order{}, err
	}
	if _, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"clientDetails": details}}); err != nil {
		return models.Order{}, err
	}
	return s.mutate(before, func(o *models.Order) { o.ClientDetails = details }), nil
}

// AssignRider is the dispatch action: assigning a courier and moving to
// Out for Delivery is one atomic business action, not two edits.
func (s *Orders) AssignRider(ctx context.Context, id, riderID bson.ObjectID) (models.Order, error) {
	before, err := s.ByID(id)
	if err != nil {
		return models.Order{}, err
	}
	update := bson.M{"$set": bson.M{
		"riderId": riderID,
		"status":  models.OrderStatusOutForDelivery,
	}}
	if _, err := s.col.UpdateByID(ctx, id, update); err != nil {
		return models.Order{}, err
	}
	return s.mutate(before, func(o *models.Order) {
		o.RiderId = riderID
		o.Status = models.OrderStatusOutForDelivery
	}), nil
}

// ClearRider unassigns the rider from every order referencing it.
// Used when a rider is deleted so no order points at a ghost courier.
func (s *Orders) ClearRider(ctx context.Context, riderID bson.ObjectID) error {
	filter := bson.M{"riderId": riderID}
	if _, err := s.col.UpdateMany(ctx, filter, bson.M{"$unset": bson.M{"riderId": ""}}); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].RiderId == riderID {
			s.items[i].RiderId = bson.ObjectID{}
		}
	}
	s.mu.Unlock()
	return nil
}

// mutate applies fn to the snapshot copy of the order and returns it.
// If a concurrent reload dropped the order from the snapshot between
// the remote write and this patch, fn is applied to the caller's
// pre-write copy instead so the result still reflects the write.
func (s *Orders) mutate(before models.Order, fn func(*models.Order)) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Id == before.Id {
			fn(&s.items[i])
			return s.items[i]
		}
	}
	fn(&before)
	return before
}

// applyDelta issues one stock decrement per product. The writes are
// independent; a failure part-way leaves the earlier decrements applied
// and is only logged, matching the fire-and-forget write semantics.
func (s *Orders) applyDelta(ctx context.Context, orderID bson.ObjectID, delta map[bson.ObjectID]int) {
	for productID, qty := range delta {
		if err := s.products.DecrementStock(ctx, productID, qty); err != nil {
			logDecrementFailure(orderID, productID, err)
		}
	}
}

// fulfillmentDelta computes the per-product stock decrements owed by a
// prospective (status, payment) write. Non-nil only when the order
// moves into the Fulfilled state from any other state, so the decrement
// runs exactly once per order: the guard re-checks the pre-write
// snapshot, and a re-save of an already fulfilled order yields nil.
func fulfillmentDelta(before models.Order, status models.OrderStatus, payment models.PaymentStatus) map[bson.ObjectID]int {
	was := before.Fulfillment()
	now := models.Fulfillment(status, payment)
	if now != models.FulfillmentFulfilled || was == models.FulfillmentFulfilled {
		return nil
	}
	delta := make(map[bson.ObjectID]int, len(before.Items))
	for _, item := range before.Items {
		delta[item.Id] += item.Quantity
	}
	return delta
}
