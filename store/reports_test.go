package store

import (
	"testing"
	"time"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func fulfilledOrder(total float64, when time.Time, items ...models.CartItem) models.Order {
	return models.Order{
		Id:            bson.NewObjectID(),
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusDelivered,
		PaymentStatus: models.PaymentStatusPaid,
		OrderDate:     when,
	}
}

func TestResolveReportRange(t *testing.T) {
	// A Wednesday mid-afternoon, so week and month anchors differ.
	now := time.Date(2026, time.January, 14, 15, 30, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("AllTimeIsUnbounded", func(t *testing.T) {
		window, err := ResolveReportRange("all", "", "", now)
		require.NoError(t, err)
		assert.True(t, window.contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))

		window, err = ResolveReportRange("", "", "", now)
		require.NoError(t, err)
		assert.True(t, window.contains(now))
	})

	t.Run("Today", func(t *testing.T) {
		window, err := ResolveReportRange("today", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, day(14), window.From)
		assert.Equal(t, day(15), window.To)
	})

	t.Run("Yesterday", func(t *testing.T) {
		window, err := ResolveReportRange("yesterday", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, day(13), window.From)
		assert.Equal(t, day(14), window.To)
	})

	t.Run("WeekStartsSunday", func(t *testing.T) {
		window, err := ResolveReportRange("week", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, day(11), window.From)
		assert.Equal(t, day(15), window.To)
	})

	t.Run("Month", func(t *testing.T) {
		window, err := ResolveReportRange("month", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, day(1), window.From)
		assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), window.To)
	})

	t.Run("Year", func(t *testing.T) {
		window, err := ResolveReportRange("year", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, day(1), window.From)
		assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), window.To)
	})

	t.Run("CustomIncludesEndDay", func(t *testing.T) {
		window, err := ResolveReportRange("custom", "2026-01-01", "2026-01-10", now)
		require.NoError(t, err)
		assert.Equal(t, day(1), window.From)
		assert.Equal(t, day(11), window.To)
		assert.True(t, window.contains(day(10).Add(23*time.Hour)))
	})

	t.Run("CustomNeedsBothBounds", func(t *testing.T) {
		_, err := ResolveReportRange("custom", "2026-01-01", "", now)
		assert.ErrorIs(t, err, ErrBadReportPeriod)

		_, err = ResolveReportRange("custom", "", "2026-01-10", now)
		assert.ErrorIs(t, err, ErrBadReportPeriod)

		_, err = ResolveReportRange("custom", "january", "2026-01-10", now)
		assert.ErrorIs(t, err, ErrBadReportPeriod)
	})

	t.Run("UnknownPeriod", func(t *testing.T) {
		_, err := ResolveReportRange("fortnight", "", "", now)
		assert.ErrorIs(t, err, ErrBadReportPeriod)
	})
}

func TestBuildSalesReport(t *testing.T) {
	productA := models.Product{Id: bson.NewObjectID(), Name: "A", Price: 100, Stock: 10}
	productB := models.Product{Id: bson.NewObjectID(), Name: "B", Price: 50, Stock: 4}
	products := []models.Product{productA, productB}

	jan10 := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	jan20 := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)

	t.Run("OnlyFulfilledOrdersCount", func(t *testing.T) {
		sale := fulfilledOrder(250, jan10, lineItem(productA, 2), lineItem(productB, 1))
		unpaid := fulfilledOrder(999, jan10, lineItem(productA, 1))
		unpaid.PaymentStatus = models.PaymentStatusUnpaid
		undelivered := fulfilledOrder(999, jan10, lineItem(productA, 1))
		undelivered.Status = models.OrderStatusProcessing

		report := BuildSalesReport([]models.Order{sale, unpaid, undelivered}, products, ReportRange{})
		assert.Equal(t, 250.0, report.TotalRevenue)
		assert.Equal(t, 3, report.UnitsSold)
		assert.Equal(t, 1, report.NumberOfOrders)
		require.Len(t, report.Sales, 1)
		assert.Equal(t, sale.Id, report.Sales[0].Id)
	})

	t.Run("WindowIsHalfOpen", func(t *testing.T) {
		inside := fulfilledOrder(100, jan10, lineItem(productA, 1))
		atEnd := fulfilledOrder(200, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), lineItem(productA, 1))
		window := ReportRange{
			From: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		}

		report := BuildSalesReport([]models.Order{inside, atEnd}, nil, window)
		assert.Equal(t, 100.0, report.TotalRevenue)
		assert.Equal(t, 1, report.NumberOfOrders)
	})

	t.Run("StockValueIgnoresWindow", func(t *testing.T) {
		window := ReportRange{
			From: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		}

		report := BuildSalesReport([]models.Order{fulfilledOrder(100, jan20, lineItem(productA, 1))}, products, window)
		assert.Equal(t, 0, report.NumberOfOrders)
		assert.Equal(t, 1200.0, report.StockValue, "100*10 + 50*4")
		assert.NotNil(t, report.Sales, "empty report serializes as [], not null")
	})
}

func TestBuildDashboardStats(t *testing.T) {
	product := models.Product{Id: bson.NewObjectID(), Price: 10, Stock: 1}
	when := time.Now().UTC()

	sale := fulfilledOrder(300, when, lineItem(product, 1))
	pending := fulfilledOrder(50, when, lineItem(product, 1))
	pending.Status = models.OrderStatusPendingPayment
	pending.PaymentStatus = models.PaymentStatusUnpaid
	enRoute := fulfilledOrder(75, when, lineItem(product, 1))
	enRoute.Status = models.OrderStatusOutForDelivery
	cancelled := fulfilledOrder(20, when, lineItem(product, 1))
	cancelled.Status = models.OrderStatusCancelled
	cancelled.PaymentStatus = models.PaymentStatusUnpaid

	stats := BuildDashboardStats([]models.Order{sale, pending, enRoute, cancelled}, []models.Product{product})
	assert.Equal(t, 300.0, stats.TotalSales, "only delivered and paid orders are sales")
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 4, stats.TotalOrders)
}
