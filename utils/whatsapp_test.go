package utils

import (
	"strings"
	"testing"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func testOrder(payment models.PaymentStatus) models.Order {
	return models.Order{
		Id:         bson.NewObjectID(),
		TrackingId: "AFBTEST12345",
		ClientDetails: models.ClientDetails{
			Name:    "Wanjiru Kamau",
			Address: "12 Riverside Drive, Nairobi",
			Phone:   "+254 712 345 678",
		},
		Items: []models.CartItem{
			{Product: models.Product{Name: "Kente Bomber Jacket"}, Quantity: 2, SelectedSize: "L", SelectedColor: "Black/Gold"},
		},
		Total:         150.4,
		Status:        models.OrderStatusProcessing,
		PaymentStatus: payment,
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "254712345678", DigitsOnly("+254 712-345 678"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}

func TestDispatchMessage(t *testing.T) {
	t.Run("Unpaid", func(t *testing.T) {
		order := testOrder(models.PaymentStatusUnpaid)
		msg := DispatchMessage(order)

		assert.True(t, strings.HasPrefix(msg, "DISPATCH\n"))
		assert.Contains(t, msg, "Order ID: "+order.Id.Hex())
		assert.Contains(t, msg, "Client: Wanjiru Kamau")
		assert.Contains(t, msg, "- Kente Bomber Jacket (2)")
		assert.Contains(t, msg, "Payment Status: UNPAID")
		assert.Contains(t, msg, "PLEASE COLLECT: KSH 150")
	})

	t.Run("Paid", func(t *testing.T) {
		msg := DispatchMessage(testOrder(models.PaymentStatusPaid))
		assert.Contains(t, msg, "Payment Status: PAID")
		assert.NotContains(t, msg, "PLEASE COLLECT")
	})
}

func TestDispatchLink(t *testing.T) {
	rider := models.Rider{Name: "Moses", Phone: "+254 700 000 001"}
	link := DispatchLink(testOrder(models.PaymentStatusUnpaid), rider)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/254700000001?text="))
	assert.NotContains(t, link, " ", "message must be url-escaped")
}

func TestClientSummaryMessage(t *testing.T) {
	order := testOrder(models.PaymentStatusPaid)
	msg := ClientSummaryMessage(order, "https://afriblend.co.ke/")

	assert.Contains(t, msg, "Hello Wanjiru Kamau,")
	assert.Contains(t, msg, "- Kente Bomber Jacket (Size: L, Color: Black/Gold) x 2")
	assert.Contains(t, msg, "Total: KSH 150")
	assert.Contains(t, msg, "Status: Processing")
	assert.Contains(t, msg, "https://afriblend.co.ke/#/track/AFBTEST12345")
}
