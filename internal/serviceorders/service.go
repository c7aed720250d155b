// Package serviceorders tracks repair orders from intake to pickup.
// Client and checklist names are denormalized onto the order at save
// time so listings render without cross-store joins.
package serviceorders

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecosistens/nexusshop-backend/internal/checklists"
	"github.com/ecosistens/nexusshop-backend/internal/clients"
	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/pagination"
	"github.com/ecosistens/nexusshop-backend/pkg/validate"
)

// Status is the lifecycle state of an order. Values are the Portuguese
// labels shown on the board.
type Status string

const (
	StatusOpen         Status = "Aberto"
	StatusInAnalysis   Status = "Em Análise"
	StatusAwaitingPart Status = "Aguardando Peça"
	StatusCompleted    Status = "Concluído"
	StatusCancelled    Status = "Cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInAnalysis, StatusAwaitingPart, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                    string           `json:"id"`
	ClientID              string           `json:"client_id"`
	ClientName            string           `json:"client_name"`
	Equipment             string           `json:"equipment"`
	SerialNumber          string           `json:"serial_number,omitempty"`
	IssueDescription      string           `json:"issue_description"`
	Status                Status           `json:"status"`
	ChecklistTemplateID   string           `json:"checklist_template_id,omitempty"`
	ChecklistTemplateName string           `json:"checklist_template_name,omitempty"`
	DateIn                time.Time        `json:"date_in"`
	EstimatedDateOut      *time.Time       `json:"estimated_date_out,omitempty"`
	TotalValue            *decimal.Decimal `json:"total_value,omitempty"`
}

type Draft struct {
	ClientID            string           `json:"client_id" validate:"required"`
	Equipment           string           `json:"equipment" validate:"required"`
	SerialNumber        string           `json:"serial_number"`
	IssueDescription    string           `json:"issue_description" validate:"required"`
	Status              Status           `json:"status"`
	ChecklistTemplateID string           `json:"checklist_template_id"`
	EstimatedDateOut    *time.Time       `json:"estimated_date_out"`
	TotalValue          *decimal.Decimal `json:"total_value"`
}

type ListInput struct {
	Query  string
	Status Status
	Page   pagination.Params
}

type Service interface {
	List(ctx context.Context, in ListInput) ([]Order, int, error)
	Get(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, draft Draft) (*Order, error)
	Update(ctx context.Context, id string, draft Draft) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	mu      sync.RWMutex
	records []Order
	clients clients.Service
	lists   checklists.Service
	now     func() time.Time
}

// NewService wires the registries used to resolve denormalized names.
func NewService(clientSvc clients.Service, checklistSvc checklists.Service) Service {
	return &service{clients: clientSvc, lists: checklistSvc, now: time.Now}
}

func (s *service) List(_ context.Context, in ListInput) ([]Order, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Order, 0, len(s.records))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.records {
		if in.Status != "" && rec.Status != in.Status {
			continue
		}
		if query == "" ||
			strings.Contains(strings.ToLower(rec.ClientName), query) ||
			strings.Contains(strings.ToLower(rec.Equipment), query) ||
			strings.Contains(strings.ToLower(rec.IssueDescription), query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return append([]Order(nil), matched[from:to]...), total, nil
}

func (s *service) Get(_ context.Context, id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "service order not found")
	}
	rec := s.records[idx]
	return &rec, nil
}

func (s *service) Create(ctx context.Context, draft Draft) (*Order, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = StatusOpen
	}
	if !draft.Status.Valid() {
		return nil, errors.New(errors.CodeValidation, "unknown order status").
			WithDetails(map[string]string{"status": string(draft.Status)})
	}

	clientName, checklistName, err := s.resolveNames(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Order{
		ID:                    uuid.NewString(),
		ClientID:              draft.ClientID,
		ClientName:            clientName,
		Equipment:             draft.Equipment,
		SerialNumber:          draft.SerialNumber,
		IssueDescription:      draft.IssueDescription,
		Status:                draft.Status,
		ChecklistTemplateID:   draft.ChecklistTemplateID,
		ChecklistTemplateName: checklistName,
		DateIn:                s.now().UTC(),
		EstimatedDateOut:      draft.EstimatedDateOut,
		TotalValue:            draft.TotalValue,
	}
	s.records = append(s.records, rec)
	return &rec, nil
}

func (s *service) Update(ctx context.Context, id string, draft Draft) (*Order, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return nil, errors.New(errors.CodeValidation, "unknown order status").
			WithDetails(map[string]string{"status": string(draft.Status)})
	}

	clientName, checklistName, err := s.resolveNames(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "service order not found")
	}

	rec := &s.records[idx]
	rec.ClientID = draft.ClientID
	rec.ClientName = clientName
	rec.Equipment = draft.Equipment
	rec.SerialNumber = draft.SerialNumber
	rec.IssueDescription = draft.IssueDescription
	if draft.Status != "" {
		rec.Status = draft.Status
	}
	rec.ChecklistTemplateID = draft.ChecklistTemplateID
	rec.ChecklistTemplateName = checklistName
	rec.EstimatedDateOut = draft.EstimatedDateOut
	rec.TotalValue = draft.TotalValue

	out := *rec
	return &out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "service order not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

// resolveNames snapshots the client and checklist names at save time.
// A missing client is a hard error; a missing checklist only clears
// the denormalized name since the link is optional.
func (s *service) resolveNames(ctx context.Context, draft Draft) (string, string, error) {
	client, err := s.clients.Get(ctx, draft.ClientID)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return "", "", errors.New(errors.CodeValidation, "client does not exist").
				WithDetails(map[string]string{"client_id": draft.ClientID})
		}
		return "", "", err
	}

	checklistName := ""
	if draft.ChecklistTemplateID != "" && s.lists != nil {
		tmpl, err := s.lists.Get(ctx, draft.ChecklistTemplateID)
		if err == nil {
			checklistName = tmpl.Name
		}
	}
	return client.Name, checklistName, nil
}

func (s *service) indexLocked(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
