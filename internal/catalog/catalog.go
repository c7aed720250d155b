// Package catalog holds the storefront's read-only product data. The
// store is seeded once at boot and never mutated afterwards; there is
// no persistence behind it.
package catalog

import (
	"github.com/shopspring/decimal"
)

type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Subcategories []SubCategory `json:"subcategories"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OldPrice      *decimal.Decimal `json:"old_price,omitempty"`
	BrandID       string           `json:"brand_id"`
	CategoryID    string           `json:"category_id"`
	SubCategoryID string           `json:"sub_category_id"`
	Images        []string         `json:"images"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Stock         int              `json:"stock"`
	Features      []string         `json:"features"`
}

// Store is the immutable in-memory catalog.
type Store struct {
	products   []Product
	categories []Category
	brands     []Brand

	productByID    map[string]int
	categoryByID   map[string]int
	categoryBySlug map[string]int
	brandByID      map[string]int
}

// NewStore indexes the given catalog data. The slices are retained as
// given; callers must not mutate them afterwards.
func NewStore(products []Product, categories []Category, brands []Brand) *Store {
	s := &Store{
		products:       products,
		categories:     categories,
		brands:         brands,
		productByID:    make(map[string]int, len(products)),
		categoryByID:   make(map[string]int, len(categories)),
		categoryBySlug: make(map[string]int, len(categories)),
		brandByID:      make(map[string]int, len(brands)),
	}
	for i, p := range products {
		s.productByID[p.ID] = i
	}
	for i, c := range categories {
		s.categoryByID[c.ID] = i
		s.categoryBySlug[c.Slug] = i
	}
	for i, b := range brands {
		s.brandByID[b.ID] = i
	}
	return s
}

// Products returns the catalog in original order.
func (s *Store) Products() []Product {
	return s.products
}

// Categories returns all categories in original order.
func (s *Store) Categories() []Category {
	return s.categories
}

// Brands returns all brands in original order.
func (s *Store) Brands() []Brand {
	return s.brands
}

// ProductByID returns the product and whether it exists.
func (s *Store) ProductByID(id string) (Product, bool) {
	if i, ok := s.productByID[id]; ok {
		return s.products[i], true
	}
	return Product{}, false
}

// CategoryBySlug resolves a category slug; false for unknown slugs.
func (s *Store) CategoryBySlug(slug string) (Category, bool) {
	if i, ok := s.categoryBySlug[slug]; ok {
		return s.categories[i], true
	}
	return Category{}, false
}

// BrandName resolves a brand reference for display. Dangling
// references resolve to a blank name, never an error.
func (s *Store) BrandName(id string) string {
	if i, ok := s.brandByID[id]; ok {
		return s.brands[i].Name
	}
	return ""
}

// CategoryName resolves a category reference for display, blank when
// dangling.
func (s *Store) CategoryName(id string) string {
	if i, ok := s.categoryByID[id]; ok {
		return s.categories[i].Name
	}
	return ""
}

// SubCategoryName resolves a subcategory reference for display,
// blank when dangling.
func (s *Store) SubCategoryName(categoryID, subCategoryID string) string {
	i, ok := s.categoryByID[categoryID]
	if !ok {
		return ""
	}
	for _, sub := range s.categories[i].Subcategories {
		if sub.ID == subCategoryID {
			return sub.Name
		}
	}
	return ""
}
