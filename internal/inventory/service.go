// Package inventory manages the back-office product and service
// sheets. These are richer than the storefront catalog entries: they
// carry fiscal fields (NCM, barcode), purchase pricing and the flag
// that publishes an item to the store.
package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/pagination"
	"github.com/ecosistens/nexusshop-backend/pkg/validate"
)

// Product is the admin-side product sheet.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Barcode          string          `json:"barcode"`
	NCM              string          `json:"ncm"`
	Unit             string          `json:"unit"`
	Model            string          `json:"model"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	Margin           decimal.Decimal `json:"margin"`
	RetailPrice      decimal.Decimal `json:"retail_price"`
	WholesalePrice   decimal.Decimal `json:"wholesale_price"`
	SerialNumber     string          `json:"serial_number,omitempty"`
	SupplierID       string          `json:"supplier_id,omitempty"`
	Stock            int             `json:"stock"`
	ShowInStore      bool            `json:"show_in_store"`
	StoreDescription string          `json:"store_description,omitempty"`
}

type ProductDraft struct {
	Name             string          `json:"name" validate:"required"`
	Barcode          string          `json:"barcode"`
	NCM              string          `json:"ncm"`
	Unit             string          `json:"unit" validate:"required"`
	Model            string          `json:"model"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	Margin           decimal.Decimal `json:"margin"`
	RetailPrice      decimal.Decimal `json:"retail_price"`
	WholesalePrice   decimal.Decimal `json:"wholesale_price"`
	SerialNumber     string          `json:"serial_number"`
	SupplierID       string          `json:"supplier_id"`
	Stock            int             `json:"stock" validate:"min=0"`
	ShowInStore      bool            `json:"show_in_store"`
	StoreDescription string          `json:"store_description"`
}

// ServiceItem is the admin-side service sheet (repairs, installs).
type ServiceItem struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Barcode          string          `json:"barcode"`
	NCM              string          `json:"ncm"`
	Unit             string          `json:"unit"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	Margin           decimal.Decimal `json:"margin"`
	RetailPrice      decimal.Decimal `json:"retail_price"`
	WholesalePrice   decimal.Decimal `json:"wholesale_price"`
	SerialNumber     string          `json:"serial_number,omitempty"`
	SupplierID       string          `json:"supplier_id,omitempty"`
	Quantity         int             `json:"quantity"`
	ShowInStore      bool            `json:"show_in_store"`
	StoreDescription string          `json:"store_description,omitempty"`
}

type ServiceDraft struct {
	Description      string          `json:"description" validate:"required"`
	Barcode          string          `json:"barcode"`
	NCM              string          `json:"ncm"`
	Unit             string          `json:"unit" validate:"required"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	Margin           decimal.Decimal `json:"margin"`
	RetailPrice      decimal.Decimal `json:"retail_price"`
	WholesalePrice   decimal.Decimal `json:"wholesale_price"`
	SerialNumber     string          `json:"serial_number"`
	SupplierID       string          `json:"supplier_id"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	ShowInStore      bool            `json:"show_in_store"`
	StoreDescription string          `json:"store_description"`
}

type ListInput struct {
	Query string
	Page  pagination.Params
}

type Service interface {
	ListProducts(ctx context.Context, in ListInput) ([]Product, int, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, draft ProductDraft) (*Product, error)
	UpdateProduct(ctx context.Context, id string, draft ProductDraft) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListServices(ctx context.Context, in ListInput) ([]ServiceItem, int, error)
	GetService(ctx context.Context, id string) (*ServiceItem, error)
	CreateService(ctx context.Context, draft ServiceDraft) (*ServiceItem, error)
	UpdateService(ctx context.Context, id string, draft ServiceDraft) (*ServiceItem, error)
	DeleteService(ctx context.Context, id string) error
}

type service struct {
	mu       sync.RWMutex
	products []Product
	services []ServiceItem
}

func NewService() Service {
	return &service{}
}

func (s *service) ListProducts(_ context.Context, in ListInput) ([]Product, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Product, 0, len(s.products))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.products {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.Model), query) ||
			strings.Contains(rec.Barcode, query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return append([]Product(nil), matched[from:to]...), total, nil
}

func (s *service) GetProduct(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.productIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}
	rec := s.products[idx]
	return &rec, nil
}

func (s *service) CreateProduct(_ context.Context, draft ProductDraft) (*Product, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := productFromDraft(uuid.NewString(), draft)
	s.products = append(s.products, rec)
	return &rec, nil
}

func (s *service) UpdateProduct(_ context.Context, id string, draft ProductDraft) (*Product, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}
	rec := productFromDraft(id, draft)
	s.products[idx] = rec
	return &rec, nil
}

func (s *service) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "product not found")
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	return nil
}

func (s *service) ListServices(_ context.Context, in ListInput) ([]ServiceItem, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]ServiceItem, 0, len(s.services))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.services {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Description), query) ||
			strings.Contains(rec.Barcode, query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return append([]ServiceItem(nil), matched[from:to]...), total, nil
}

func (s *service) GetService(_ context.Context, id string) (*ServiceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.serviceIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "service not found")
	}
	rec := s.services[idx]
	return &rec, nil
}

func (s *service) CreateService(_ context.Context, draft ServiceDraft) (*ServiceItem, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := serviceFromDraft(uuid.NewString(), draft)
	s.services = append(s.services, rec)
	return &rec, nil
}

func (s *service) UpdateService(_ context.Context, id string, draft ServiceDraft) (*ServiceItem, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.serviceIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "service not found")
	}
	rec := serviceFromDraft(id, draft)
	s.services[idx] = rec
	return &rec, nil
}

func (s *service) DeleteService(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.serviceIndexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "service not found")
	}
	s.services = append(s.services[:idx], s.services[idx+1:]...)
	return nil
}

func (s *service) productIndexLocked(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *service) serviceIndexLocked(id string) int {
	for i := range s.services {
		if s.services[i].ID == id {
			return i
		}
	}
	return -1
}

func productFromDraft(id string, draft ProductDraft) Product {
	return Product{
		ID:               id,
		Name:             draft.Name,
		Barcode:          draft.Barcode,
		NCM:              draft.NCM,
		Unit:             draft.Unit,
		Model:            draft.Model,
		PurchasePrice:    draft.PurchasePrice,
		Margin:           draft.Margin,
		RetailPrice:      draft.RetailPrice,
		WholesalePrice:   draft.WholesalePrice,
		SerialNumber:     draft.SerialNumber,
		SupplierID:       draft.SupplierID,
		Stock:            draft.Stock,
		ShowInStore:      draft.ShowInStore,
		StoreDescription: draft.StoreDescription,
	}
}

func serviceFromDraft(id string, draft ServiceDraft) ServiceItem {
	return ServiceItem{
		ID:               id,
		Description:      draft.Description,
		Barcode:          draft.Barcode,
		NCM:              draft.NCM,
		Unit:             draft.Unit,
		CostPrice:        draft.CostPrice,
		Margin:           draft.Margin,
		RetailPrice:      draft.RetailPrice,
		WholesalePrice:   draft.WholesalePrice,
		SerialNumber:     draft.SerialNumber,
		SupplierID:       draft.SupplierID,
		Quantity:         draft.Quantity,
		ShowInStore:      draft.ShowInStore,
		StoreDescription: draft.StoreDescription,
	}
}
