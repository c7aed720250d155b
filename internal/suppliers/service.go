// Package suppliers manages the supplier registry, including the
// assigned seller contact used by purchasing.
package suppliers

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/pagination"
	"github.com/ecosistens/nexusshop-backend/pkg/types"
	"github.com/ecosistens/nexusshop-backend/pkg/validate"
)

type Supplier struct {
	ID                string          `json:"id"`
	CorporateName     string          `json:"corporate_name"`
	Name              string          `json:"name"`
	Contact           string          `json:"contact"`
	Email             string          `json:"email"`
	CNPJ              string          `json:"cnpj"`
	StateRegistration string          `json:"state_registration"`
	Addresses         []types.Address `json:"addresses"`
	SellerName        string          `json:"seller_name"`
	SellerContact     string          `json:"seller_contact"`
	SellerEmail       string          `json:"seller_email"`
}

type Draft struct {
	CorporateName     string          `json:"corporate_name" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Contact           string          `json:"contact"`
	Email             string          `json:"email" validate:"omitempty,email"`
	CNPJ              string          `json:"cnpj" validate:"required"`
	StateRegistration string          `json:"state_registration"`
	Addresses         []types.Address `json:"addresses"`
	SellerName        string          `json:"seller_name"`
	SellerContact     string          `json:"seller_contact"`
	SellerEmail       string          `json:"seller_email" validate:"omitempty,email"`
}

type ListInput struct {
	Query string
	Page  pagination.Params
}

type Service interface {
	List(ctx context.Context, in ListInput) ([]Supplier, int, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	Create(ctx context.Context, draft Draft) (*Supplier, error)
	Update(ctx context.Context, id string, draft Draft) (*Supplier, error)
	Delete(ctx context.Context, id string) error
	AddAddress(ctx context.Context, id string, addr types.Address) (*Supplier, error)
	RemoveAddress(ctx context.Context, id string, index int) (*Supplier, error)
}

type service struct {
	mu      sync.RWMutex
	records []Supplier
}

func NewService() Service {
	return &service{}
}

func (s *service) List(_ context.Context, in ListInput) ([]Supplier, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Supplier, 0, len(s.records))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.CorporateName), query) ||
			strings.Contains(types.DigitsOnly(rec.CNPJ), query) {
			matched = append(matched, rec)
		}
	}

	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return cloneAll(matched[from:to]), total, nil
}

func (s *service) Get(_ context.Context, id string) (*Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "supplier not found")
	}
	rec := clone(s.records[idx])
	return &rec, nil
}

func (s *service) Create(_ context.Context, draft Draft) (*Supplier, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Supplier{
		ID:                uuid.NewString(),
		CorporateName:     draft.CorporateName,
		Name:              draft.Name,
		Contact:           draft.Contact,
		Email:             draft.Email,
		CNPJ:              draft.CNPJ,
		StateRegistration: draft.StateRegistration,
		Addresses:         append([]types.Address(nil), draft.Addresses...),
		SellerName:        draft.SellerName,
		SellerContact:     draft.SellerContact,
		SellerEmail:       draft.SellerEmail,
	}
	s.records = append(s.records, rec)
	out := clone(rec)
	return &out, nil
}

func (s *service) Update(_ context.Context, id string, draft Draft) (*Supplier, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "supplier not found")
	}

	rec := &s.records[idx]
	rec.CorporateName = draft.CorporateName
	rec.Name = draft.Name
	rec.Contact = draft.Contact
	rec.Email = draft.Email
	rec.CNPJ = draft.CNPJ
	rec.StateRegistration = draft.StateRegistration
	rec.SellerName = draft.SellerName
	rec.SellerContact = draft.SellerContact
	rec.SellerEmail = draft.SellerEmail
	if draft.Addresses != nil {
		rec.Addresses = append([]types.Address(nil), draft.Addresses...)
	}
	out := clone(*rec)
	return &out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "supplier not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

func (s *service) AddAddress(_ context.Context, id string, addr types.Address) (*Supplier, error) {
	if addr.IsZero() {
		return nil, errors.New(errors.CodeValidation, "address is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "supplier not found")
	}
	s.records[idx].Addresses = append(s.records[idx].Addresses, addr)
	out := clone(s.records[idx])
	return &out, nil
}

func (s *service) RemoveAddress(_ context.Context, id string, index int) (*Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "supplier not found")
	}
	addrs := s.records[idx].Addresses
	if index < 0 || index >= len(addrs) {
		return nil, errors.New(errors.CodeValidation, "address index out of range")
	}
	s.records[idx].Addresses = append(addrs[:index], addrs[index+1:]...)
	out := clone(s.records[idx])
	return &out, nil
}

func (s *service) indexLocked(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(rec Supplier) Supplier {
	rec.Addresses = append([]types.Address(nil), rec.Addresses...)
	return rec
}

func cloneAll(records []Supplier) []Supplier {
	out := make([]Supplier, len(records))
	for i, rec := range records {
		out[i] = clone(rec)
	}
	return out
}
