package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AllCategories is the sentinel slug selecting every category.
const AllCategories = "all"

// FilterInput captures the category page's filter knobs. A nil price
// bound is unbounded on that side.
type FilterInput struct {
	CategorySlug string
	Query        string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

// Filter derives the displayed product list. All three predicates are
// ANDed; ordering is the original catalog order and an empty result
// is a valid outcome, not an error.
func (s *Store) Filter(input FilterInput) []Product {
	slug := strings.TrimSpace(input.CategorySlug)
	isAll := slug == "" || slug == AllCategories

	var categoryID string
	var categoryKnown bool
	if !isAll {
		if cat, ok := s.CategoryBySlug(slug); ok {
			categoryID = cat.ID
			categoryKnown = true
		}
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))

	matches := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		// An unresolvable slug matches nothing unless "all" is active.
		if !isAll && (!categoryKnown || p.CategoryID != categoryID) {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		if input.MinPrice != nil && p.Price.LessThan(*input.MinPrice) {
			continue
		}
		if input.MaxPrice != nil && p.Price.GreaterThan(*input.MaxPrice) {
			continue
		}

		matches = append(matches, p)
	}
	return matches
}
