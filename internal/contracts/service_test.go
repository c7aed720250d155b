package contracts

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/richtext"
)

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const simpleDoc = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Contrato de Prestação</w:t></w:r></w:p>
    <w:p><w:r><w:t>Cláusula primeira.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestCreateUpdateDelete(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, Draft{}); !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}

	rec, err := svc.Create(ctx, Draft{Title: "Contrato Padrão", Content: "<p>Olá</p>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.LastModified.IsZero() {
		t.Fatal("last_modified must be stamped")
	}

	first := rec.LastModified
	rec, err = svc.Update(ctx, rec.ID, Draft{Title: "Contrato Padrão v2", Content: "<p>Olá!</p>"})
	if err != nil || rec.Title != "Contrato Padrão v2" {
		t.Fatalf("update failed: %+v err=%v", rec, err)
	}
	if rec.LastModified.Before(first) {
		t.Fatal("last_modified must move forward on update")
	}

	if err := svc.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, rec.ID); !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestImportTitlesFromFilename(t *testing.T) {
	svc := NewService()
	payload := docxBytes(t, simpleDoc)

	rec, err := svc.Import(context.Background(), "Contrato de Garantia.docx", bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Title != "Contrato de Garantia" {
		t.Fatalf("title should drop the extension, got %q", rec.Title)
	}
	if !strings.Contains(rec.Content, "<h1>") || !strings.Contains(rec.Content, "Contrato de Prestação") {
		t.Fatalf("converted content missing heading: %q", rec.Content)
	}
}

func TestImportFailureCreatesNoRecord(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	garbage := []byte("this is not a zip archive")

	_, err := svc.Import(ctx, "quebrado.docx", bytes.NewReader(garbage), int64(len(garbage)))
	if !errors.IsCode(err, errors.CodeConversion) {
		t.Fatalf("expected CONVERSION_ERROR, got %v", err)
	}

	_, total, _ := svc.List(ctx, ListInput{})
	if total != 0 {
		t.Fatalf("failed import must not create a record, got %d", total)
	}
}

func TestApplyEditsRoundTripsContent(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	rec, _ := svc.Create(ctx, Draft{Title: "Contrato Padrão", Content: "<p>Cláusula primeira.</p><p>Cláusula segunda.</p>"})

	rec, err := svc.ApplyEdits(ctx, rec.ID, []Edit{
		{Op: "set_block_type", Index: 0, BlockType: richtext.BlockHeading2},
		{Op: "toggle_mark", Index: 1, Mark: richtext.MarkBold},
		{Op: "insert_block", Index: 2, Text: "Cláusula terceira."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"<h2>", "<strong>Cláusula segunda.</strong>", "Cláusula terceira."} {
		if !strings.Contains(rec.Content, want) {
			t.Fatalf("content missing %q: %q", want, rec.Content)
		}
	}
}

func TestApplyEditsRejectsBadIndex(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	rec, _ := svc.Create(ctx, Draft{Title: "Contrato", Content: "<p>Um</p>"})

	_, err := svc.ApplyEdits(ctx, rec.ID, []Edit{{Op: "remove_block", Index: 9}})
	if !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}

	fresh, _ := svc.Get(ctx, rec.ID)
	if fresh.Content != "<p>Um</p>" {
		t.Fatalf("failed edit must not change content, got %q", fresh.Content)
	}
}

func TestListSearchByTitle(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	svc.Create(ctx, Draft{Title: "Contrato de Garantia"})
	svc.Create(ctx, Draft{Title: "Termo de Responsabilidade"})

	_, total, _ := svc.List(ctx, ListInput{Query: "garantia"})
	if total != 1 {
		t.Fatalf("expected one match, got %d", total)
	}
}
