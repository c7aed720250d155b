package validate

import (
	"testing"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"omitempty,len=11"`
}

func TestStructPassesValidInput(t *testing.T) {
	err := Struct(sample{Name: "Maria", Email: "maria@example.com", CPF: "12345678901"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	err := Struct(sample{Email: "not-an-email", CPF: "123"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}

	coded := pkgerrors.As(err)
	if coded == nil {
		t.Fatalf("expected coded error, got %T", err)
	}
	details, ok := coded.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %#v", coded.Details())
	}
	for _, field := range []string{"name", "email", "cpf"} {
		if details[field] == "" {
			t.Fatalf("missing detail for %q: %v", field, details)
		}
	}
}
