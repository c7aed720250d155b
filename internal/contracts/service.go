// Package contracts manages the contract template library. Content is
// stored as the HTML the editor produces; structured edits round-trip
// through the richtext document model.
package contracts

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecosistens/nexusshop-backend/pkg/docx"
	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/pagination"
	"github.com/ecosistens/nexusshop-backend/pkg/richtext"
	"github.com/ecosistens/nexusshop-backend/pkg/validate"
)

type Template struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"last_modified"`
}

type Draft struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// Edit is one structured operation against a template's document.
type Edit struct {
	Op        string             `json:"op" validate:"required,oneof=set_block_type set_alignment toggle_mark insert_block remove_block append_text"`
	Index     int                `json:"index"`
	BlockType richtext.BlockType `json:"block_type,omitempty"`
	Alignment richtext.Alignment `json:"alignment,omitempty"`
	Mark      richtext.Mark      `json:"mark,omitempty"`
	Text      string             `json:"text,omitempty"`
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

	// Import converts an uploaded .docx into a new template titled
	// from the filename. On conversion failure no record is created.
	Import(ctx context.Context, filename string, file io.ReaderAt, size int64) (*Template, error)

	// ApplyEdits mutates the template content through the document
	// model and stores the re-serialized HTML.
	ApplyEdits(ctx context.Context, id string, edits []Edit) (*Template, error)
}

type service struct {
	mu      sync.RWMutex
	records []Template
	now     func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

func (s *service) List(_ context.Context, in ListInput) ([]Template, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Template, 0, len(s.records))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.records {
		if query == "" || strings.Contains(strings.ToLower(rec.Title), query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)
	return append([]Template(nil), matched[from:to]...), total, nil
}

func (s *service) Get(_ context.Context, id string) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "contract template not found")
	}
	rec := s.records[idx]
	return &rec, nil
}

func (s *service) Create(_ context.Context, draft Draft) (*Template, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Template{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Content:      draft.Content,
		LastModified: s.now().UTC(),
	}
	s.records = append(s.records, rec)
	return &rec, nil
}

func (s *service) Update(_ context.Context, id string, draft Draft) (*Template, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "contract template not found")
	}
	rec := &s.records[idx]
	rec.Title = draft.Title
	rec.Content = draft.Content
	rec.LastModified = s.now().UTC()
	out := *rec
	return &out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "contract template not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

func (s *service) Import(_ context.Context, filename string, file io.ReaderAt, size int64) (*Template, error) {
	title := strings.TrimSuffix(filepath.Base(filename), ".docx")
	if strings.TrimSpace(title) == "" {
		return nil, errors.New(errors.CodeValidation, "filename is required")
	}

	// Conversion runs before anything is stored so a broken upload
	// leaves the library untouched.
	content, err := docx.Convert(file, size)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Template{
		ID:           uuid.NewString(),
		Title:        title,
		Content:      content,
		LastModified: s.now().UTC(),
	}
	s.records = append(s.records, rec)
	return &rec, nil
}

func (s *service) ApplyEdits(_ context.Context, id string, edits []Edit) (*Template, error) {
	for _, edit := range edits {
		if err := validate.Struct(edit); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "contract template not found")
	}

	doc := richtext.FromHTML(s.records[idx].Content)
	for i, edit := range edits {
		if err := applyEdit(doc, edit); err != nil {
			return nil, errors.Wrap(errors.CodeValidation, err, "edit failed").
				WithDetails(map[string]any{"edit": i, "op": edit.Op})
		}
	}

	rec := &s.records[idx]
	rec.Content = richtext.ToHTML(doc)
	rec.LastModified = s.now().UTC()
	out := *rec
	return &out, nil
}

func applyEdit(doc *richtext.Document, edit Edit) error {
	switch edit.Op {
	case "set_block_type":
		return doc.SetBlockType(edit.Index, edit.BlockType)
	case "set_alignment":
		return doc.SetAlignment(edit.Index, edit.Alignment)
	case "toggle_mark":
		return doc.ToggleMark(edit.Index, edit.Mark)
	case "insert_block":
		block := richtext.Paragraph(edit.Text)
		if edit.BlockType != "" {
			block.Type = edit.BlockType
		}
		return doc.InsertBlock(edit.Index, block)
	case "remove_block":
		return doc.RemoveBlock(edit.Index)
	case "append_text":
		return doc.AppendText(edit.Index, edit.Text)
	}
	return errors.New(errors.CodeValidation, "unknown edit op")
}

func (s *service) indexLocked(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
