package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testStore() *Store {
	products := []Product{
		{ID: "a", Name: "Alpha Phone", Description: "um aparelho", Price: decimal.NewFromInt(100), CategoryID: "x"},
		{ID: "b", Name: "Beta Speaker", Description: "uma caixa", Price: decimal.NewFromInt(200), CategoryID: "y"},
	}
	categories := []Category{
		{ID: "x", Name: "Phones", Slug: "phones"},
		{ID: "y", Name: "Speakers", Slug: "speakers"},
	}
	return NewStore(products, categories, nil)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestFilterAllReturnsCatalogInOrder(t *testing.T) {
	s := testStore()
	got := s.Filter(FilterInput{CategorySlug: AllCategories})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected full catalog in order, got %+v", got)
	}

	// Blank slug behaves like the sentinel.
	if got := s.Filter(FilterInput{}); len(got) != 2 {
		t.Fatalf("blank slug should match everything, got %d", len(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	s := testStore()
	got := s.Filter(FilterInput{CategorySlug: "phones"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected [a], got %+v", got)
	}
}

func TestFilterUnknownSlugMatchesNothing(t *testing.T) {
	s := testStore()
	if got := s.Filter(FilterInput{CategorySlug: "furniture"}); len(got) != 0 {
		t.Fatalf("unresolvable slug must match nothing, got %+v", got)
	}
}

func TestFilterByQueryCaseInsensitive(t *testing.T) {
	s := testStore()
	got := s.Filter(FilterInput{CategorySlug: AllCategories, Query: "ALPHA"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected [a] for query alpha, got %+v", got)
	}

	// Description also matches.
	got = s.Filter(FilterInput{CategorySlug: AllCategories, Query: "caixa"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected [b] for query caixa, got %+v", got)
	}

	if got := s.Filter(FilterInput{CategorySlug: AllCategories, Query: "zzz"}); len(got) != 0 {
		t.Fatalf("no-match query must return empty, got %+v", got)
	}
}

func TestFilterByPriceInclusiveBounds(t *testing.T) {
	s := testStore()

	got := s.Filter(FilterInput{CategorySlug: AllCategories, MinPrice: dec(150), MaxPrice: dec(250)})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected [b] in [150,250], got %+v", got)
	}

	// Boundary prices are included on both ends.
	got = s.Filter(FilterInput{CategorySlug: AllCategories, MinPrice: dec(100), MaxPrice: dec(200)})
	if len(got) != 2 {
		t.Fatalf("boundary prices must be included, got %+v", got)
	}

	got = s.Filter(FilterInput{CategorySlug: AllCategories, MinPrice: dec(201)})
	if len(got) != 0 {
		t.Fatalf("expected empty above the range, got %+v", got)
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	s := testStore()
	got := s.Filter(FilterInput{CategorySlug: "phones", Query: "speaker"})
	if len(got) != 0 {
		t.Fatalf("category and query must both hold, got %+v", got)
	}
}

func TestSeedCatalogShape(t *testing.T) {
	s := Seed()
	if len(s.Products()) == 0 || len(s.Categories()) != 3 || len(s.Brands()) != 4 {
		t.Fatalf("unexpected seed shape: %d products, %d categories, %d brands",
			len(s.Products()), len(s.Categories()), len(s.Brands()))
	}
	for _, p := range s.Products() {
		if len(p.Images) != 4 {
			t.Fatalf("product %s should carry 4 images, has %d", p.ID, len(p.Images))
		}
		if s.CategoryName(p.CategoryID) == "" {
			t.Fatalf("product %s references unknown category %s", p.ID, p.CategoryID)
		}
	}
}

func TestDanglingReferencesResolveBlank(t *testing.T) {
	s := testStore()
	if name := s.BrandName("ghost"); name != "" {
		t.Fatalf("dangling brand should resolve blank, got %q", name)
	}
	if name := s.CategoryName("ghost"); name != "" {
		t.Fatalf("dangling category should resolve blank, got %q", name)
	}
	if name := s.SubCategoryName("x", "ghost"); name != "" {
		t.Fatalf("dangling subcategory should resolve blank, got %q", name)
	}
}
