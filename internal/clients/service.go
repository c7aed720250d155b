// Package clients manages the back-office client registry. Records
// live in memory in insertion order, like the rest of the admin data.
package clients

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

// Client is a registered customer of the store.
type Client struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Email     string          `json:"email"`
	RG        string          `json:"rg"`
	CPF       string          `json:"cpf"`
	Addresses []types.Address `json:"addresses"`
}

// Draft carries the editable fields of a client. Addresses are staged
// on the draft as a whole list; once the record exists they change
// only through AddAddress and RemoveAddress.
type Draft struct {
	Name      string          `json:"name" validate:"required"`
	Contact   string          `json:"contact" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	RG        string          `json:"rg"`
	CPF       string          `json:"cpf" validate:"required"`
	Addresses []types.Address `json:"addresses"`
}

type ListInput struct {
	Query string
	Page  pagination.Params
}

type Service interface {
	List(ctx context.Context, in ListInput) ([]Client, int, error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, draft Draft) (*Client, error)
	Update(ctx context.Context, id string, draft Draft) (*Client, error)
	Delete(ctx context.Context, id string) error
	AddAddress(ctx context.Context, id string, addr types.Address) (*Client, error)
	RemoveAddress(ctx context.Context, id string, index int) (*Client, error)
}

type service struct {
	mu      sync.RWMutex
	records []Client
}

func NewService() Service {
	return &service{}
}

// Seed replaces the registry contents, used at startup.
func Seed(svc Service, records []Client) {
	s, ok := svc.(*service)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Client(nil), records...)
}

func (s *service) List(_ context.Context, in ListInput) ([]Client, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Client, 0, len(s.records))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.Email), query) ||
			strings.Contains(types.DigitsOnly(rec.CPF), query) {
			matched = append(matched, rec)
		}
	}

	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return cloneAll(matched[from:to]), total, nil
}

func (s *service) Get(_ context.Context, id string) (*Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "client not found")
	}
	rec := clone(s.records[idx])
	return &rec, nil
}

func (s *service) Create(_ context.Context, draft Draft) (*Client, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Client{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Contact:   draft.Contact,
		Email:     draft.Email,
		RG:        draft.RG,
		CPF:       draft.CPF,
		Addresses: append([]types.Address(nil), draft.Addresses...),
	}
	s.records = append(s.records, rec)
	out := clone(rec)
	return &out, nil
}

func (s *service) Update(_ context.Context, id string, draft Draft) (*Client, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "client not found")
	}

	rec := &s.records[idx]
	rec.Name = draft.Name
	rec.Contact = draft.Contact
	rec.Email = draft.Email
	rec.RG = draft.RG
	rec.CPF = draft.CPF
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
		return errors.New(errors.CodeNotFound, "client not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

// AddAddress appends a staged address to the record. Addresses are
// never edited in place; a correction is a remove plus an add.
func (s *service) AddAddress(_ context.Context, id string, addr types.Address) (*Client, error) {
	if addr.IsZero() {
		return nil, errors.New(errors.CodeValidation, "address is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "client not found")
	}
	s.records[idx].Addresses = append(s.records[idx].Addresses, addr)
	out := clone(s.records[idx])
	return &out, nil
}

func (s *service) RemoveAddress(_ context.Context, id string, index int) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "client not found")
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

func clone(rec Client) Client {
	rec.Addresses = append([]types.Address(nil), rec.Addresses...)
	return rec
}

func cloneAll(records []Client) []Client {
	out := make([]Client, len(records))
	for i, rec := range records {
		out[i] = clone(rec)
	}
	return out
}
