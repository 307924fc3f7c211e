package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "Pending Payment"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// FulfillmentState is the combined projection of (status, paymentStatus).
// Modelling the pair as one declared state machine avoids re-deriving
// "was/is fulfilled" from raw string comparisons at every call site.
type FulfillmentState string

const (
	FulfillmentUnfulfilled     FulfillmentState = "Unfulfilled"
	FulfillmentReadyToFulfill  FulfillmentState = "ReadyToFulfill"
	FulfillmentAwaitingPayment FulfillmentState = "AwaitingPayment"
	FulfillmentFulfilled       FulfillmentState = "Fulfilled"
)

// Fulfillment maps a (status, paymentStatus) pair onto the combined state.
func Fulfillment(status OrderStatus, payment PaymentStatus) FulfillmentState {
	delivered := status == OrderStatusDelivered
	paid := payment == PaymentStatusPaid
	switch {
	case delivered && paid:
		return FulfillmentFulfilled
	case delivered:
		return FulfillmentAwaitingPayment
	case paid:
		return FulfillmentReadyToFulfill
	default:
		return FulfillmentUnfulfilled
	}
}

// ClientDetails is a denormalized copy embedded in the order, editable
// independently after order creation.
type ClientDetails struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	Phone   string `bson:"phone" json:"phone"`
}

type Order struct {
	Id            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	TrackingId    string        `bson:"trackingId" json:"trackingId"`
	ClientDetails ClientDetails `bson:"clientDetails" json:"clientDetails"`
	Items         []CartItem    `bson:"items" json:"items"`
	Total         float64       `bson:"total" json:"total"`
	Status        OrderStatus   `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	RiderId       bson.ObjectID `bson:"riderId,omitempty" json:"riderId,omitempty"`
	OrderDate     time.Time     `bson:"orderDate" json:"orderDate"`
	PaymentMethod string        `bson:"paymentMethod" json:"paymentMethod"`
	IsDeleted     bool          `bson:"isDeleted,omitempty" json:"isDeleted,omitempty"`
}

// Fulfillment returns the order's current combined state.
func (o Order) Fulfillment() FulfillmentState {
	return Fulfillment(o.Status, o.PaymentStatus)
}
