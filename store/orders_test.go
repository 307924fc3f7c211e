package store

import (
	"testing"
	"time"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func lineItem(p models.Product, qty int) models.CartItem {
	return models.CartItem{Product: p, Quantity: qty, SelectedSize: "M", SelectedColor: "Red"}
}

func TestFulfillmentDelta(t *testing.T) {
	productA := models.Product{Id: bson.NewObjectID(), Name: "A", Price: 100, Stock: 10}
	productB := models.Product{Id: bson.NewObjectID(), Name: "B", Price: 50, Stock: 5}

	base := models.Order{
		Id:            bson.NewObjectID(),
		Items:         []models.CartItem{lineItem(productA, 1), lineItem(productB, 2)},
		Total:         200,
		Status:        models.OrderStatusProcessing,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	t.Run("StatusWriteCompletesCondition", func(t *testing.T) {
		order := base
		order.PaymentStatus = models.PaymentStatusPaid

		delta := fulfillmentDelta(order, models.OrderStatusDelivered, order.PaymentStatus)
		require.NotNil(t, delta)
		assert.Equal(t, 1, delta[productA.Id])
		assert.Equal(t, 2, delta[productB.Id])
	})

	t.Run("PaymentWriteCompletesCondition", func(t *testing.T) {
		order := base
		order.Status = models.OrderStatusDelivered

		delta := fulfillmentDelta(order, order.Status, models.PaymentStatusPaid)
		require.NotNil(t, delta)
		assert.Equal(t, 1, delta[productA.Id])
	})

	t.Run("PartialConditionNoDelta", func(t *testing.T) {
		assert.Nil(t, fulfillmentDelta(base, models.OrderStatusDelivered, models.PaymentStatusUnpaid))
		assert.Nil(t, fulfillmentDelta(base, models.OrderStatusProcessing, models.PaymentStatusPaid))
	})

	t.Run("ResaveOfFulfilledOrderNoDelta", func(t *testing.T) {
		order := base
		order.Status = models.OrderStatusDelivered
		order.PaymentStatus = models.PaymentStatusPaid

		// Same fields written again, e.g. an admin re-saving the order.
		assert.Nil(t, fulfillmentDelta(order, models.OrderStatusDelivered, models.PaymentStatusPaid))
	})

	t.Run("LeavingFulfilledNoDelta", func(t *testing.T) {
		order := base
		order.Status = models.OrderStatusDelivered
		order.PaymentStatus = models.PaymentStatusPaid

		assert.Nil(t, fulfillmentDelta(order, models.OrderStatusCancelled, order.PaymentStatus))
	})

	t.Run("DuplicateProductLinesSum", func(t *testing.T) {
		order := base
		order.PaymentStatus = models.PaymentStatusPaid
		order.Items = []models.CartItem{lineItem(productA, 1), {
			Product: productA, Quantity: 3, SelectedSize: "L", SelectedColor: "Blue",
		}}

		delta := fulfillmentDelta(order, models.OrderStatusDelivered, order.PaymentStatus)
		assert.Equal(t, 4, delta[productA.Id])
	})
}

func TestClampStock(t *testing.T) {
	assert.Equal(t, 9, clampStock(10, 1))
	assert.Equal(t, 3, clampStock(5, 2))
	assert.Equal(t, 0, clampStock(2, 2))
	assert.Equal(t, 0, clampStock(1, 5), "stock never goes negative")
}

func snapshotOrders(orders ...models.Order) *Orders {
	s := &Orders{}
	s.items = append(s.items, orders...)
	return s
}

func TestOrderLookups(t *testing.T) {
	phoneOrder := func(phone string) models.Order {
		return models.Order{
			Id:            bson.NewObjectID(),
			TrackingId:    "AFB" + bson.NewObjectID().Hex()[:9],
			ClientDetails: models.ClientDetails{Phone: phone},
			OrderDate:     time.Now().UTC(),
		}
	}

	t.Run("ByTrackingIdIsCaseInsensitive", func(t *testing.T) {
		order := phoneOrder("0712")
		order.TrackingId = "abc123"
		s := snapshotOrders(order)

		found, err := s.ByTrackingId("ABC123")
		require.NoError(t, err)
		assert.Equal(t, order.Id, found.Id)

		_, err = s.ByTrackingId("zzz999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ByPhoneIgnoresWhitespace", func(t *testing.T) {
		a := phoneOrder("+254 712 345 678")
		b := phoneOrder("+254712345678")
		c := phoneOrder("+254 700 000 000")
		s := snapshotOrders(a, b, c)

		matches := s.ByPhone("+254712 345678")
		assert.Len(t, matches, 2, "all matching orders are returned")

		assert.Empty(t, s.ByPhone("+254 799 999 999"))
	})

	t.Run("ByID", func(t *testing.T) {
		order := phoneOrder("0712")
		s := snapshotOrders(order)

		found, err := s.ByID(order.Id)
		require.NoError(t, err)
		assert.Equal(t, order.TrackingId, found.TrackingId)

		_, err = s.ByID(bson.NewObjectID())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMutate(t *testing.T) {
	order := models.Order{
		Id:     bson.NewObjectID(),
		Status: models.OrderStatusProcessing,
	}

	t.Run("PatchesSnapshotEntry", func(t *testing.T) {
		s := snapshotOrders(order)

		got := s.mutate(order, func(o *models.Order) { o.Status = models.OrderStatusDelivered })
		assert.Equal(t, models.OrderStatusDelivered, got.Status)
		assert.Equal(t, models.OrderStatusDelivered, s.items[0].Status)
	})

	t.Run("FallsBackToCallerCopyWhenSnapshotDroppedOrder", func(t *testing.T) {
		// A reload between the remote write and the local patch can
		// leave the snapshot without the order. The returned value must
		// still carry the order's fields plus the mutation.
		s := snapshotOrders()

		got := s.mutate(order, func(o *models.Order) { o.Status = models.OrderStatusDelivered })
		assert.Equal(t, order.Id, got.Id)
		assert.Equal(t, models.OrderStatusDelivered, got.Status)
	})
}

func TestNewTrackingCode(t *testing.T) {
	t.Run("FreshCode", func(t *testing.T) {
		s := snapshotOrders()
		code, err := s.newTrackingCode()
		require.NoError(t, err)
		assert.Len(t, code, 12)
	})

	t.Run("AvoidsExistingCodes", func(t *testing.T) {
		existing := models.Order{Id: bson.NewObjectID(), TrackingId: "AFBAAAAAAAAA"}
		s := snapshotOrders(existing)

		code, err := s.newTrackingCode()
		require.NoError(t, err)
		assert.NotEqual(t, existing.TrackingId, code)
	})
}
