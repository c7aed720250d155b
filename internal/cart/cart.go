// Package cart is the single source of truth for the shopper's
// in-progress selection. State is process-wide, shared by the navbar
// badge, the drawer and the product pages, and lost on restart.
package cart

import (
	"sync"

	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Item is a catalog product plus its selected quantity. The product
// identifier is the uniqueness key; quantity is always >= 1 for a
// stored item.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Snapshot is a consistent view of the cart: the rows plus the
// derived values computed under the same lock, so they can never be
// stale relative to the rows.
type Snapshot struct {
	Items     []Item          `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	Open      bool            `json:"open"`
}

// Store holds the mutable cart state. The original UI mutated this
// from a single thread; HTTP handlers are concurrent, so a mutex
// keeps the "every mutation immediately visible" contract.
type Store struct {
	mu    sync.Mutex
	items []Item
	open  bool
}

func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the product in the cart: a new row with
// quantity 1, or an increment when the product is already present.
// Stock counts are deliberately not checked, matching the storefront.
func (s *Store) Add(product catalog.Product) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			return s.snapshotLocked()
		}
	}
	s.items = append(s.items, Item{Product: product, Quantity: 1})
	return s.snapshotLocked()
}

// UpdateQuantity sets a row's quantity. A quantity of zero or less
// removes the row entirely; the store never keeps a zero-quantity
// row even though the drawer disables its own decrement at 1.
// Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		break
	}
	return s.snapshotLocked()
}

// Remove drops a row unconditionally. Unknown ids are a no-op.
func (s *Store) Remove(productID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return s.snapshotLocked()
}

// SetOpen toggles the slide-over drawer flag without touching the
// cart contents.
func (s *Store) SetOpen(open bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
	return s.snapshotLocked()
}

// Snapshot returns the current rows and derived values.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]Item, len(s.items))
	copy(items, s.items)

	count := 0
	total := decimal.Zero
	for _, item := range s.items {
		count += item.Quantity
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return Snapshot{
		Items:     items,
		ItemCount: count,
		Total:     total,
		Open:      s.open,
	}
}
