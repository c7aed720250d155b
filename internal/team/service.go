// Package team manages the back-office people registry: staff members
// and external collaborators. Collaborators can be either companies or
// individuals, so the document field holds a CNPJ or a CPF.
package team

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

type Member struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Email     string          `json:"email"`
	RG        string          `json:"rg"`
	CPF       string          `json:"cpf"`
	Addresses []types.Address `json:"addresses"`
}

type MemberDraft struct {
	Name      string          `json:"name" validate:"required"`
	Contact   string          `json:"contact"`
	Email     string          `json:"email" validate:"required,email"`
	RG        string          `json:"rg"`
	CPF       string          `json:"cpf" validate:"required"`
	Addresses []types.Address `json:"addresses"`
}

type Collaborator struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Contact       string          `json:"contact"`
	Email         string          `json:"email"`
	Document      string          `json:"document"`
	Inscription   string          `json:"inscription,omitempty"`
	Addresses     []types.Address `json:"addresses"`
	SellerName    string          `json:"seller_name,omitempty"`
	SellerContact string          `json:"seller_contact,omitempty"`
	SellerEmail   string          `json:"seller_email,omitempty"`
}

type CollaboratorDraft struct {
	Name          string          `json:"name" validate:"required"`
	Contact       string          `json:"contact"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Document      string          `json:"document" validate:"required"`
	Inscription   string          `json:"inscription"`
	Addresses     []types.Address `json:"addresses"`
	SellerName    string          `json:"seller_name"`
	SellerContact string          `json:"seller_contact"`
	SellerEmail   string          `json:"seller_email" validate:"omitempty,email"`
}

type ListInput struct {
	Query string
	Page  pagination.Params
}

type Service interface {
	ListMembers(ctx context.Context, in ListInput) ([]Member, int, error)
	GetMember(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, draft MemberDraft) (*Member, error)
	UpdateMember(ctx context.Context, id string, draft MemberDraft) (*Member, error)
	DeleteMember(ctx context.Context, id string) error
	AddMemberAddress(ctx context.Context, id string, addr types.Address) (*Member, error)
	RemoveMemberAddress(ctx context.Context, id string, index int) (*Member, error)

	ListCollaborators(ctx context.Context, in ListInput) ([]Collaborator, int, error)
	GetCollaborator(ctx context.Context, id string) (*Collaborator, error)
	CreateCollaborator(ctx context.Context, draft CollaboratorDraft) (*Collaborator, error)
	UpdateCollaborator(ctx context.Context, id string, draft CollaboratorDraft) (*Collaborator, error)
	DeleteCollaborator(ctx context.Context, id string) error
	AddCollaboratorAddress(ctx context.Context, id string, addr types.Address) (*Collaborator, error)
	RemoveCollaboratorAddress(ctx context.Context, id string, index int) (*Collaborator, error)
}

type service struct {
	mu            sync.RWMutex
	members       []Member
	collaborators []Collaborator
}

func NewService() Service {
	return &service{}
}

func (s *service) ListMembers(_ context.Context, in ListInput) ([]Member, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Member, 0, len(s.members))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.members {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.Email), query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)

	out := make([]Member, to-from)
	for i, rec := range matched[from:to] {
		out[i] = cloneMember(rec)
	}
	return out, total, nil
}

func (s *service) GetMember(_ context.Context, id string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.memberIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "team member not found")
	}
	rec := cloneMember(s.members[idx])
	return &rec, nil
}

func (s *service) CreateMember(_ context.Context, draft MemberDraft) (*Member, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Member{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Contact:   draft.Contact,
		Email:     draft.Email,
		RG:        draft.RG,
		CPF:       draft.CPF,
		Addresses: append([]types.Address(nil), draft.Addresses...),
	}
	s.members = append(s.members, rec)
	out := cloneMember(rec)
	return &out, nil
}

func (s *service) UpdateMember(_ context.Context, id string, draft MemberDraft) (*Member, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "team member not found")
	}
	rec := &s.members[idx]
	rec.Name = draft.Name
	rec.Contact = draft.Contact
	rec.Email = draft.Email
	rec.RG = draft.RG
	rec.CPF = draft.CPF
	if draft.Addresses != nil {
		rec.Addresses = append([]types.Address(nil), draft.Addresses...)
	}
	out := cloneMember(*rec)
	return &out, nil
}

func (s *service) DeleteMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "team member not found")
	}
	s.members = append(s.members[:idx], s.members[idx+1:]...)
	return nil
}

func (s *service) AddMemberAddress(_ context.Context, id string, addr types.Address) (*Member, error) {
	if addr.IsZero() {
		return nil, errors.New(errors.CodeValidation, "address is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "team member not found")
	}
	s.members[idx].Addresses = append(s.members[idx].Addresses, addr)
	out := cloneMember(s.members[idx])
	return &out, nil
}

func (s *service) RemoveMemberAddress(_ context.Context, id string, index int) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "team member not found")
	}
	addrs := s.members[idx].Addresses
	if index < 0 || index >= len(addrs) {
		return nil, errors.New(errors.CodeValidation, "address index out of range")
	}
	s.members[idx].Addresses = append(addrs[:index], addrs[index+1:]...)
	out := cloneMember(s.members[idx])
	return &out, nil
}

func (s *service) ListCollaborators(_ context.Context, in ListInput) ([]Collaborator, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Collaborator, 0, len(s.collaborators))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, rec := range s.collaborators {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(types.DigitsOnly(rec.Document), query) {
			matched = append(matched, rec)
		}
	}
	total := len(matched)
	from, to := pagination.Slice(in.Page, total)

	out := make([]Collaborator, to-from)
	for i, rec := range matched[from:to] {
		out[i] = cloneCollaborator(rec)
	}
	return out, total, nil
}

func (s *service) GetCollaborator(_ context.Context, id string) (*Collaborator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.collaboratorIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "collaborator not found")
	}
	rec := cloneCollaborator(s.collaborators[idx])
	return &rec, nil
}

func (s *service) CreateCollaborator(_ context.Context, draft CollaboratorDraft) (*Collaborator, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Collaborator{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		Contact:       draft.Contact,
		Email:         draft.Email,
		Document:      draft.Document,
		Inscription:   draft.Inscription,
		Addresses:     append([]types.Address(nil), draft.Addresses...),
		SellerName:    draft.SellerName,
		SellerContact: draft.SellerContact,
		SellerEmail:   draft.SellerEmail,
	}
	s.collaborators = append(s.collaborators, rec)
	out := cloneCollaborator(rec)
	return &out, nil
}

func (s *service) UpdateCollaborator(_ context.Context, id string, draft CollaboratorDraft) (*Collaborator, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collaboratorIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "collaborator not found")
	}
	rec := &s.collaborators[idx]
	rec.Name = draft.Name
	rec.Contact = draft.Contact
	rec.Email = draft.Email
	rec.Document = draft.Document
	rec.Inscription = draft.Inscription
	rec.SellerName = draft.SellerName
	rec.SellerContact = draft.SellerContact
	rec.SellerEmail = draft.SellerEmail
	if draft.Addresses != nil {
		rec.Addresses = append([]types.Address(nil), draft.Addresses...)
	}
	out := cloneCollaborator(*rec)
	return &out, nil
}

func (s *service) DeleteCollaborator(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collaboratorIndexLocked(id)
	if idx < 0 {
		return errors.New(errors.CodeNotFound, "collaborator not found")
	}
	s.collaborators = append(s.collaborators[:idx], s.collaborators[idx+1:]...)
	return nil
}

func (s *service) AddCollaboratorAddress(_ context.Context, id string, addr types.Address) (*Collaborator, error) {
	if addr.IsZero() {
		return nil, errors.New(errors.CodeValidation, "address is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collaboratorIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "collaborator not found")
	}
	s.collaborators[idx].Addresses = append(s.collaborators[idx].Addresses, addr)
	out := cloneCollaborator(s.collaborators[idx])
	return &out, nil
}

func (s *service) RemoveCollaboratorAddress(_ context.Context, id string, index int) (*Collaborator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collaboratorIndexLocked(id)
	if idx < 0 {
		return nil, errors.New(errors.CodeNotFound, "collaborator not found")
	}
	addrs := s.collaborators[idx].Addresses
	if index < 0 || index >= len(addrs) {
		return nil, errors.New(errors.CodeValidation, "address index out of range")
	}
	s.collaborators[idx].Addresses = append(addrs[:index], addrs[index+1:]...)
	out := cloneCollaborator(s.collaborators[idx])
	return &out, nil
}

func (s *service) memberIndexLocked(id string) int {
	for i := range s.members {
		if s.members[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *service) collaboratorIndexLocked(id string) int {
	for i := range s.collaborators {
		if s.collaborators[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneMember(rec Member) Member {
	rec.Addresses = append([]types.Address(nil), rec.Addresses...)
	return rec
}

func cloneCollaborator(rec Collaborator) Collaborator {
	rec.Addresses = append([]types.Address(nil), rec.Addresses...)
	return rec
}
