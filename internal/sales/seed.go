package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Seed loads a deterministic order history spread over the last 60
// days so the dashboard has both comparison windows populated on a
// fresh boot.
func Seed(svc Service, now time.Time) {
	ctx := context.Background()

	type seedSale struct {
		daysAgo int
		status  SaleStatus
		items   []SaleItem
	}

	seeds := []seedSale{
		{2, StatusCompleted, []SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("3499.90")}}},
		{5, StatusCompleted, []SaleItem{
			{ProductID: "p3", Quantity: 2, UnitPrice: decimal.RequireFromString("1299.50")},
			{ProductID: "p5", Quantity: 1, UnitPrice: decimal.RequireFromString("299.90")},
		}},
		{9, StatusCompleted, []SaleItem{{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("8999.00")}}},
		{14, StatusPending, []SaleItem{{ProductID: "p4", Quantity: 1, UnitPrice: decimal.RequireFromString("499.00")}}},
		{21, StatusCompleted, []SaleItem{{ProductID: "p6", Quantity: 1, UnitPrice: decimal.RequireFromString("2599.00")}}},
		{27, StatusCancelled, []SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("3499.90")}}},
		{35, StatusCompleted, []SaleItem{{ProductID: "p4", Quantity: 2, UnitPrice: decimal.RequireFromString("499.00")}}},
		{42, StatusCompleted, []SaleItem{{ProductID: "p3", Quantity: 1, UnitPrice: decimal.RequireFromString("1299.50")}}},
		{55, StatusCompleted, []SaleItem{{ProductID: "p5", Quantity: 2, UnitPrice: decimal.RequireFromString("299.90")}}},
	}

	for i, seed := range seeds {
		total := decimal.Zero
		for _, item := range seed.items {
			total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		svc.Record(ctx, Sale{
			ID:     fmt.Sprintf("s%d", i+1),
			Items:  seed.items,
			Total:  total,
			Status: seed.status,
			Date:   now.AddDate(0, 0, -seed.daysAgo),
		})
	}
}
