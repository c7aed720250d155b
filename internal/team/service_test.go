package team

import (
	"context"
	"testing"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/types"
)

func TestMemberLifecycle(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, MemberDraft{Name: "Ana"})
	if !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}

	rec, err := svc.CreateMember(ctx, MemberDraft{Name: "Ana Costa", Email: "ana@example.com", CPF: "123.456.789-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err = svc.UpdateMember(ctx, rec.ID, MemberDraft{Name: "Ana C. Lima", Email: "ana@example.com", CPF: "123.456.789-01"})
	if err != nil || rec.Name != "Ana C. Lima" {
		t.Fatalf("update failed: %+v err=%v", rec, err)
	}

	if err := svc.DeleteMember(ctx, rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetMember(ctx, rec.ID); !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCollaboratorAcceptsCompanyOrPersonDocument(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	company, err := svc.CreateCollaborator(ctx, CollaboratorDraft{Name: "LogTech Transportes", Document: "12.345.678/0001-95", Inscription: "110.042.490.114"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	person, err := svc.CreateCollaborator(ctx, CollaboratorDraft{Name: "Pedro Alves", Document: "987.654.321-00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, total, _ := svc.ListCollaborators(ctx, ListInput{Query: "12345678"})
	if total != 1 || got[0].ID != company.ID {
		t.Fatalf("digits query should match the company, got %+v", got)
	}

	got, total, _ = svc.ListCollaborators(ctx, ListInput{Query: "pedro"})
	if total != 1 || got[0].ID != person.ID {
		t.Fatalf("name query should match the person, got %+v", got)
	}
}

func TestMemberAddressStaging(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	rec, _ := svc.CreateMember(ctx, MemberDraft{Name: "Ana Costa", Email: "ana@example.com", CPF: "123.456.789-01"})

	rec, err := svc.AddMemberAddress(ctx, rec.ID, types.Address{ZipCode: "01310-100", Street: "Avenida Paulista", City: "São Paulo", District: "Bela Vista"})
	if err != nil || len(rec.Addresses) != 1 {
		t.Fatalf("add failed: %+v err=%v", rec, err)
	}

	if _, err := svc.RemoveMemberAddress(ctx, rec.ID, 3); !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION for bad index, got %v", err)
	}
	rec, err = svc.RemoveMemberAddress(ctx, rec.ID, 0)
	if err != nil || len(rec.Addresses) != 0 {
		t.Fatalf("remove failed: %+v err=%v", rec, err)
	}
}

func TestMembersAndCollaboratorsAreSeparate(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	svc.CreateMember(ctx, MemberDraft{Name: "Ana Costa", Email: "ana@example.com", CPF: "123.456.789-01"})
	svc.CreateCollaborator(ctx, CollaboratorDraft{Name: "Pedro Alves", Document: "987.654.321-00"})

	_, members, _ := svc.ListMembers(ctx, ListInput{})
	_, collabs, _ := svc.ListCollaborators(ctx, ListInput{})
	if members != 1 || collabs != 1 {
		t.Fatalf("expected one of each, got members=%d collaborators=%d", members, collabs)
	}
}
