package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/afriblend/afriblend-backend/cart"
	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/afriblend/afriblend-backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func siteURL() string {
	if v := strings.TrimRight(os.Getenv("SITE_URL"), "/"); v != "" {
		return v
	}
	return "https://afriblend.example.com"
}

var orderStatuses = map[models.OrderStatus]bool{
	models.OrderStatusPendingPayment: true,
	models.OrderStatusProcessing:     true,
	models.OrderStatusOutForDelivery: true,
	models.OrderStatusDelivered:      true,
	models.OrderStatusCancelled:      true,
}

// POST /checkout
// Turns the session cart into an order. The cart is cleared only after
// the order is stored.
func Checkout(sessions *cart.Sessions, orders *store.Orders, settings *store.Singleton[models.StoreSettings]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CheckoutDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method, ok := settings.Get().EnabledPaymentMethod(body.PaymentMethod)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment method not available"})
			return
		}

		basket := sessionCart(c, sessions)
		items := basket.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		details := models.ClientDetails{
			Name:    body.Client.Name,
			Phone:   body.Client.Phone,
			Address: body.Client.Address,
		}
		order, err := orders.Create(c.Request.Context(), items, basket.Total(), details, method.Name)
		if err != nil {
			if errors.Is(err, store.ErrTrackingCodeCollision) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		basket.Clear()

		c.JSON(http.StatusCreated, gin.H{
			"order":         order,
			"paymentMethod": method,
			"summaryLink":   utils.ClientSummaryLink(order, siteURL()),
		})
	}
}

// GET /orders/track/:trackingId
func TrackOrder(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.ByTrackingId(c.Param("trackingId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/lookup?phone=...
// Exact match after whitespace stripping; returns every order placed
// with that number, newest first.
func LookupOrdersByPhone(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("phone")
		if strings.TrimSpace(phone) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing phone"})
			return
		}
		c.JSON(http.StatusOK, orders.ByPhone(phone))
	}
}

// GET /admin/orders
func GetOrders(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.All())
	}
}

// PATCH /admin/orders/:id/status
func UpdateOrderStatus(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.UpdateOrderStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status := models.OrderStatus(body.Status)
		if !orderStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		order, err := orders.SetStatus(c.Request.Context(), id, status)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /admin/orders/:id/payment
func UpdatePaymentStatus(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.UpdatePaymentStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		payment := models.PaymentStatus(body.PaymentStatus)
		if payment != models.PaymentStatusPaid && payment != models.PaymentStatusUnpaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status"})
			return
		}

		order, err := orders.SetPaymentStatus(c.Request.Context(), id, payment)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:id/client
func UpdateOrderClientDetails(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.ClientDetailsDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateClientDetails(c.Request.Context(), id, models.ClientDetails{
			Name:    body.Name,
			Phone:   body.Phone,
			Address: body.Address,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /admin/orders/:id/rider
// Assigning a rider also moves the order to Out for Delivery and
// returns the WhatsApp dispatch link for that rider.
func AssignRider(orders *store.Orders, riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.AssignRiderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		riderID, err := bson.ObjectIDFromHex(body.RiderId)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rider id"})
			return
		}
		rider, err := riders.ByID(riderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "rider not found"})
			return
		}

		order, err := orders.AssignRider(c.Request.Context(), id, riderID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":        order,
			"dispatchLink": utils.DispatchLink(order, rider),
		})
	}
}

// GET /admin/orders/:id/dispatch-link
func GetDispatchLink(orders *store.Orders, riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, err := orders.ByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if order.RiderId.IsZero() {
			c.JSON(http.StatusConflict, gin.H{"error": "no rider assigned"})
			return
		}
		rider, err := riders.ByID(order.RiderId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "rider not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dispatchLink": utils.DispatchLink(order, rider)})
	}
}

// GET /admin/orders/:id/summary-link
func GetClientSummaryLink(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, err := orders.ByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"summaryLink": utils.ClientSummaryLink(order, siteURL())})
	}
}
