package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFulfillment(t *testing.T) {
	t.Run("DeliveredAndPaid", func(t *testing.T) {
		assert.Equal(t, FulfillmentFulfilled, Fulfillment(OrderStatusDelivered, PaymentStatusPaid))
	})

	t.Run("DeliveredUnpaid", func(t *testing.T) {
		assert.Equal(t, FulfillmentAwaitingPayment, Fulfillment(OrderStatusDelivered, PaymentStatusUnpaid))
	})

	t.Run("PaidNotDelivered", func(t *testing.T) {
		for _, s := range []OrderStatus{
			OrderStatusPendingPayment,
			OrderStatusProcessing,
			OrderStatusOutForDelivery,
			OrderStatusCancelled,
		} {
			assert.Equal(t, FulfillmentReadyToFulfill, Fulfillment(s, PaymentStatusPaid), string(s))
		}
	})

	t.Run("NeitherDeliveredNorPaid", func(t *testing.T) {
		for _, s := range []OrderStatus{
			OrderStatusPendingPayment,
			OrderStatusProcessing,
			OrderStatusOutForDelivery,
			OrderStatusCancelled,
		} {
			assert.Equal(t, FulfillmentUnfulfilled, Fulfillment(s, PaymentStatusUnpaid), string(s))
		}
	})
}

func TestProductVisible(t *testing.T) {
	hidden := false
	shown := true

	assert.True(t, Product{}.Visible(), "absent flag means visible")
	assert.True(t, Product{IsVisible: &shown}.Visible())
	assert.False(t, Product{IsVisible: &hidden}.Visible())
}

func TestEnabledPaymentMethod(t *testing.T) {
	settings := StoreSettings{PaymentMethods: []PaymentMethodDetails{
		{Id: "1", Name: "M-Pesa", Enabled: true, Instructions: "Pay to till 123456"},
		{Id: "2", Name: "Bank Transfer", Enabled: false},
	}}

	pm, ok := settings.EnabledPaymentMethod("M-Pesa")
	assert.True(t, ok)
	assert.Equal(t, "Pay to till 123456", pm.Instructions)

	_, ok = settings.EnabledPaymentMethod("Bank Transfer")
	assert.False(t, ok, "disabled methods are not selectable")

	_, ok = settings.EnabledPaymentMethod("Cash")
	assert.False(t, ok)
}
