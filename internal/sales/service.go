// Package sales holds the order history behind the admin dashboard.
// Metrics compare the last 30 days against the 30 before; only
// completed sales count.
package sales

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecosistens/nexusshop-backend/internal/catalog"
)

type SaleStatus string

const (
	StatusCompleted SaleStatus = "completed"
	StatusPending   SaleStatus = "pending"
	StatusCancelled SaleStatus = "cancelled"
)

type SaleItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Sale struct {
	ID     string          `json:"id"`
	Items  []SaleItem      `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status SaleStatus      `json:"status"`
	Date   time.Time       `json:"date"`
}

// CategoryShare is one slice of the revenue breakdown.
type CategoryShare struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Metrics is the dashboard payload.
type Metrics struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	SalesGrowth       decimal.Decimal `json:"sales_growth"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	AvgOrderGrowth    decimal.Decimal `json:"avg_order_growth"`
	OrderCount        int             `json:"order_count"`
	RevenueByCategory []CategoryShare `json:"revenue_by_category"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

type Service interface {
	Record(ctx context.Context, sale Sale)
	List(ctx context.Context) []Sale
	Dashboard(ctx context.Context) Metrics
}

type service struct {
	mu      sync.RWMutex
	records []Sale
	catalog *catalog.Store
	now     func() time.Time
}

func NewService(store *catalog.Store) Service {
	return &service{catalog: store, now: time.Now}
}

// NewServiceAt fixes the clock, used by tests.
func NewServiceAt(store *catalog.Store, now func() time.Time) Service {
	return &service{catalog: store, now: now}
}

func (s *service) Record(_ context.Context, sale Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, sale)
}

func (s *service) List(_ context.Context) []Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Sale(nil), s.records...)
}

func (s *service) Dashboard(_ context.Context) Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	windowStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var current, previous []Sale
	for _, sale := range s.records {
		if sale.Status != StatusCompleted {
			continue
		}
		switch {
		case !sale.Date.Before(windowStart):
			current = append(current, sale)
		case !sale.Date.Before(previousStart) && sale.Date.Before(windowStart):
			previous = append(previous, sale)
		}
	}

	totalSales := sumTotals(current)
	previousTotal := sumTotals(previous)

	metrics := Metrics{
		TotalSales: totalSales,
		OrderCount: len(current),
	}

	if previousTotal.IsPositive() {
		metrics.SalesGrowth = totalSales.Sub(previousTotal).
			Div(previousTotal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	if len(current) > 0 {
		metrics.AverageOrderValue = totalSales.Div(decimal.NewFromInt(int64(len(current)))).Round(2)
	}
	if len(previous) > 0 {
		prevAvg := previousTotal.Div(decimal.NewFromInt(int64(len(previous))))
		if prevAvg.IsPositive() {
			metrics.AvgOrderGrowth = metrics.AverageOrderValue.Sub(prevAvg).
				Div(prevAvg).Mul(decimal.NewFromInt(100)).Round(2)
		}
	}

	metrics.RevenueByCategory, metrics.TotalRevenue = s.revenueByCategoryLocked(current)
	return metrics
}

// revenueByCategoryLocked aggregates item revenue under each
// product's category name. Items whose product or category no longer
// resolves are skipped, matching the dashboard's lenient joins.
func (s *service) revenueByCategoryLocked(sales []Sale) ([]CategoryShare, decimal.Decimal) {
	revenue := map[string]decimal.Decimal{}
	order := []string{}

	for _, sale := range sales {
		for _, item := range sale.Items {
			product, ok := s.catalog.ProductByID(item.ProductID)
			if !ok {
				continue
			}
			name := s.catalog.CategoryName(product.CategoryID)
			if name == "" {
				continue
			}
			if _, seen := revenue[name]; !seen {
				order = append(order, name)
			}
			line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			revenue[name] = revenue[name].Add(line)
		}
	}

	total := decimal.Zero
	for _, name := range order {
		total = total.Add(revenue[name])
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, name := range order {
		share := CategoryShare{Name: name, Value: revenue[name]}
		if total.IsPositive() {
			share.Percentage = revenue[name].Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		shares = append(shares, share)
	}
	return shares, total
}

func sumTotals(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total)
	}
	return total
}
