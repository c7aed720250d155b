// Package checklists manages reusable inspection templates attached to
// service orders. A template owns an ordered list of items; item
// problems are reported together rather than one at a time.
package checklists

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/pagination"
	"github.com/ecosistens/nexusshop-backend/pkg/validate"
)

// ItemType is the capture mode of a checklist line.
type ItemType string

const (
	ItemCheckbox ItemType = "checkbox"
	ItemText     ItemType = "text"
	ItemPhoto    ItemType = "photo"
	ItemFile     ItemType = "file"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemCheckbox, ItemText, ItemPhoto, ItemFile:
		return true
	}
	return false
}

type Item struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Type         ItemType `json:"type"`
	Required     bool     `json:"required"`
	Instructions string   `json:"instructions,omitempty"`
}

type ItemDraft struct {
	Label        string   `json:"label"`
	Type         ItemType `json:"type"`
	Required     bool     `json:"required"`
	Instructions string   `json:"instructions"`
}

type Template struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	RelatedServiceID string    `json:"related_service_id,omitempty"`
	Items            []Item    `json:"items"`
	CreatedAt        time.Time `json:"created_at"`
}

type Draft struct {
	Name             string      `json:"name" validate:"required"`
	Description      string      `json:"description"`
	RelatedServiceID string      `json:"related_service_id"`
	Items            []ItemDraft `json:"items"`
}

type ListInput struct {
	Query string
	Page  pagination.Params
}

type Service interface {
	List(ctx context.Context, in ListInput) ([]Template, int, error)
	Get(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, draft Draft) (*Template, error)
	Update(ctx context.Context, id string, draft Draft) (*Template, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, templateID string, draft ItemDraft) (*Template, error)
	UpdateItem(ctx context.Context, templateID, itemID string, draft ItemDraft) (*Template, error)
	MoveItem(ctx context.Context, templateID, itemID string, position int) (*Template, error)
	RemoveItem(ctx context.Context, templateID, itemID string) (*Template, error)
}

type service struct {
	mu      sync.RWMutex
	records []Template
	now     func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

// validateItems accumulates every item problem so a form with several
// broken lines reports them all in one response.
func validateItems(items []ItemDraft) error {
	var err error
	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			err = multierr.Append(err, fmt.Errorf("item %d: label is required", i))
		}
		if !item.Type.Valid() {
			err = multierr.Append(err, fmt.Errorf("item %d: unknown type %q", i, item.Type))
		}
	}
	if err == nil {
		return nil
	}
	details := make([]string, 0)
	for _, e := range multierr.Errors(err) {
		details = append(details, e.Error())
	}
	return errors.New(errors.CodeValidation, "invalid checklist items").WithDetails(details)
}

func (s *service) List(_ context.Context, in ListInput) ([]Template, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Template, 0, len(s.records))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.Description), query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)

	out := make([]Template, to-from)
	for i, rec := range matched[from:to] {
		out[i] = clone(rec)
	}
	return out, total, nil
}

func (s *service) Get(_ context.Context, id string) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	rec := clone(s.records[idx])
	return &rec, nil
}

func (s *service) Create(_ context.Context, draft Draft) (*Template, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}
	if err := validateItems(draft.Items); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Template{
		ID:               uuid.NewString(),
		Name:             draft.Name,
		Description:      draft.Description,
		RelatedServiceID: draft.RelatedServiceID,
		Items:            itemsFromDrafts(draft.Items),
		CreatedAt:        s.now().UTC(),
	}
	s.records = append(s.records, rec)
	out := clone(rec)
	return &out, nil
}

func (s *service) Update(_ context.Context, id string, draft Draft) (*Template, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}
	if err := validateItems(draft.Items); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	rec := &s.records[idx]
	rec.Name = draft.Name
	rec.Description = draft.Description
	rec.RelatedServiceID = draft.RelatedServiceID
	if draft.Items != nil {
		rec.Items = itemsFromDrafts(draft.Items)
	}
	out := clone(*rec)
	return &out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "checklist template not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

func (s *service) AddItem(_ context.Context, templateID string, draft ItemDraft) (*Template, error) {
	if err := validateItems([]ItemDraft{draft}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(templateID)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	s.records[idx].Items = append(s.records[idx].Items, itemFromDraft(uuid.NewString(), draft))
	out := clone(s.records[idx])
	return &out, nil
}

func (s *service) UpdateItem(_ context.Context, templateID, itemID string, draft ItemDraft) (*Template, error) {
	if err := validateItems([]ItemDraft{draft}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(templateID)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	items := s.records[idx].Items
	pos := itemIndex(items, itemID)
	if pos < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist item not found")
	}
	items[pos] = itemFromDraft(itemID, draft)
	out := clone(s.records[idx])
	return &out, nil
}

// MoveItem reorders an item to the given zero-based position. The
// position is clamped to the list bounds.
func (s *service) MoveItem(_ context.Context, templateID, itemID string, position int) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(templateID)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	items := s.records[idx].Items
	pos := itemIndex(items, itemID)
	if pos < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist item not found")
	}

	if position < 0 {
		position = 0
	}
	if position > len(items)-1 {
		position = len(items) - 1
	}

	moved := items[pos]
	items = append(items[:pos], items[pos+1:]...)
	items = append(items[:position], append([]Item{moved}, items[position:]...)...)
	s.records[idx].Items = items

	out := clone(s.records[idx])
	return &out, nil
}

func (s *service) RemoveItem(_ context.Context, templateID, itemID string) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(templateID)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist template not found")
	}
	items := s.records[idx].Items
	pos := itemIndex(items, itemID)
	if pos < 0 {
		return nil, errors.New(errors.CodeNotFound, "checklist item not found")
	}
	s.records[idx].Items = append(items[:pos], items[pos+1:]...)
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

func itemIndex(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func itemFromDraft(id string, draft ItemDraft) Item {
	return Item{
		ID:           id,
		Label:        draft.Label,
		Type:         draft.Type,
		Required:     draft.Required,
		Instructions: draft.Instructions,
	}
}

func itemsFromDrafts(drafts []ItemDraft) []Item {
	items := make([]Item, len(drafts))
	for i, d := range drafts {
		items[i] = itemFromDraft(uuid.NewString(), d)
	}
	return items
}

func clone(rec Template) Template {
	rec.Items = append([]Item(nil), rec.Items...)
	return rec
}
