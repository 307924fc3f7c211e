package store

import (
	"errors"
	"time"

	"github.com/afriblend/afriblend-backend/models"
)

// ErrBadReportPeriod is returned for an unknown period name or a
// custom range with a missing or malformed bound.
var ErrBadReportPeriod = errors.New("invalid report period")

const reportDateLayout = "2006-01-02"

// ReportRange is a half-open [From, To) window over order dates.
// The zero range means no filtering.
type ReportRange struct {
	From time.Time
	To   time.Time
}

func (r ReportRange) contains(t time.Time) bool {
	if r.From.IsZero() && r.To.IsZero() {
		return true
	}
	return !t.Before(r.From) && t.Before(r.To)
}

// ResolveReportRange turns a named period into a concrete window.
// Named periods are anchored on now's calendar day, with weeks starting
// on Sunday. "custom" requires both bounds as YYYY-MM-DD and the end
// date's whole day is included.
func ResolveReportRange(period, from, to string, now time.Time) (ReportRange, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "", "all":
		return ReportRange{}, nil
	case "today":
		return ReportRange{From: day, To: day.AddDate(0, 0, 1)}, nil
	case "yesterday":
		return ReportRange{From: day.AddDate(0, 0, -1), To: day}, nil
	case "week":
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return ReportRange{From: start, To: day.AddDate(0, 0, 1)}, nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return ReportRange{From: start, To: start.AddDate(0, 1, 0)}, nil
	case "year":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return ReportRange{From: start, To: start.AddDate(1, 0, 0)}, nil
	case "custom":
		if from == "" || to == "" {
			return ReportRange{}, ErrBadReportPeriod
		}
		start, err := time.ParseInLocation(reportDateLayout, from, now.Location())
		if err != nil {
			return ReportRange{}, ErrBadReportPeriod
		}
		end, err := time.ParseInLocation(reportDateLayout, to, now.Location())
		if err != nil {
			return ReportRange{}, ErrBadReportPeriod
		}
		return ReportRange{From: start, To: end.AddDate(0, 0, 1)}, nil
	default:
		return ReportRange{}, ErrBadReportPeriod
	}
}

// SalesReport aggregates the fulfilled orders inside a window.
// StockValue prices the whole current catalog, independent of the window.
type SalesReport struct {
	TotalRevenue   float64        `json:"totalRevenue"`
	UnitsSold      int            `json:"unitsSold"`
	NumberOfOrders int            `json:"numberOfOrders"`
	StockValue     float64        `json:"stockValue"`
	Sales          []models.Order `json:"sales"`
}

// BuildSalesReport derives the report from order and product snapshots.
// Only fulfilled orders, delivered and paid, count as sales.
func BuildSalesReport(orders []models.Order, products []models.Product, window ReportRange) SalesReport {
	report := SalesReport{Sales: []models.Order{}}
	for _, o := range orders {
		if o.Fulfillment() != models.FulfillmentFulfilled || !window.contains(o.OrderDate) {
			continue
		}
		report.TotalRevenue += o.Total
		for _, item := range o.Items {
			report.UnitsSold += item.Quantity
		}
		report.Sales = append(report.Sales, o)
	}
	report.NumberOfOrders = len(report.Sales)
	for _, p := range products {
		report.StockValue += p.Price * float64(p.Stock)
	}
	return report
}

// DashboardStats is the headline counter row for the admin landing page.
type DashboardStats struct {
	TotalSales    float64 `json:"totalSales"`
	PendingOrders int     `json:"pendingOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
}

// BuildDashboardStats derives the counters from order and product
// snapshots. Pending covers every order still ahead of delivery.
func BuildDashboardStats(orders []models.Order, products []models.Product) DashboardStats {
	stats := DashboardStats{TotalProducts: len(products), TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Fulfillment() == models.FulfillmentFulfilled {
			stats.TotalSales += o.Total
		}
		switch o.Status {
		case models.OrderStatusPendingPayment, models.OrderStatusProcessing, models.OrderStatusOutForDelivery:
			stats.PendingOrders++
		}
	}
	return stats
}
