package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
)

func productDraft(name string) ProductDraft {
	return ProductDraft{
		Name:          name,
		Unit:          "UN",
		Barcode:       "7891234567890",
		PurchasePrice: decimal.RequireFromString("1200.00"),
		Margin:        decimal.RequireFromString("35"),
		RetailPrice:   decimal.RequireFromString("1620.00"),
		Stock:         10,
	}
}

func TestProductCRUD(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, ProductDraft{}); !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}

	rec, err := svc.CreateProduct(ctx, productDraft("Notebook UltraBook Z15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.RetailPrice.Equal(decimal.RequireFromString("1620.00")) {
		t.Fatalf("retail price mismatch: %s", rec.RetailPrice)
	}

	d := productDraft("Notebook UltraBook Z15")
	d.Stock = 4
	rec, err = svc.UpdateProduct(ctx, rec.ID, d)
	if err != nil || rec.Stock != 4 {
		t.Fatalf("update failed: %+v err=%v", rec, err)
	}

	if err := svc.DeleteProduct(ctx, rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetProduct(ctx, rec.ID); !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestNegativeStockRejected(t *testing.T) {
	svc := NewService()
	d := productDraft("Notebook")
	d.Stock = -1
	if _, err := svc.CreateProduct(context.Background(), d); !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}

func TestProductSearchByNameAndBarcode(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	svc.CreateProduct(ctx, productDraft("Notebook UltraBook Z15"))
	other := productDraft("Smartphone Galaxy Pro X")
	other.Barcode = "7890000000001"
	svc.CreateProduct(ctx, other)

	_, total, _ := svc.ListProducts(ctx, ListInput{Query: "ultrabook"})
	if total != 1 {
		t.Fatalf("name query should match one, got %d", total)
	}
	_, total, _ = svc.ListProducts(ctx, ListInput{Query: "7890000000001"})
	if total != 1 {
		t.Fatalf("barcode query should match one, got %d", total)
	}
}

func TestServiceCRUD(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	rec, err := svc.CreateService(ctx, ServiceDraft{
		Description: "Formatação e instalação de sistema",
		Unit:        "UN",
		CostPrice:   decimal.RequireFromString("40.00"),
		RetailPrice: decimal.RequireFromString("120.00"),
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, total, _ := svc.ListServices(ctx, ListInput{Query: "formatação"})
	if total != 1 || got[0].ID != rec.ID {
		t.Fatalf("search failed: total=%d", total)
	}

	if err := svc.DeleteService(ctx, rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteService(ctx, rec.ID); !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
