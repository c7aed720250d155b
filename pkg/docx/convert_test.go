package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
)

func buildDocx(t *testing.T, documentXML string) *bytes.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/><w:jc w:val="center"/></w:pPr>
      <w:r><w:t>CONTRATO DE PRESTAÇÃO DE SERVIÇOS</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t xml:space="preserve">CONTRATANTE: </w:t></w:r>
      <w:r><w:rPr><w:b/></w:rPr><w:t>Nome do Cliente</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>
      <w:r><w:t>primeira obrigação</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

func TestConvertSampleDocument(t *testing.T) {
	reader := buildDocx(t, sampleDocument)
	html, err := Convert(reader, reader.Size())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	for _, want := range []string{
		`<h1 style="text-align:center">CONTRATO DE PRESTAÇÃO DE SERVIÇOS</h1>`,
		`CONTRATANTE: <strong>Nome do Cliente</strong>`,
		`<ul><li>primeira obrigação</li></ul>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in output:\n%s", want, html)
		}
	}
}

func TestConvertRejectsNonZip(t *testing.T) {
	payload := bytes.NewReader([]byte("definitely not a zip file"))
	_, err := Convert(payload, payload.Size())
	if !pkgerrors.IsCode(err, pkgerrors.CodeConversion) {
		t.Fatalf("expected CONVERSION_ERROR, got %v", err)
	}
}

func TestConvertRejectsMissingDocumentPart(t *testing.T) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	w, _ := zw.Create("word/styles.xml")
	_, _ = w.Write([]byte("<w:styles/>"))
	_ = zw.Close()

	reader := bytes.NewReader(buf.Bytes())
	_, err := Convert(reader, reader.Size())
	if !pkgerrors.IsCode(err, pkgerrors.CodeConversion) {
		t.Fatalf("expected CONVERSION_ERROR, got %v", err)
	}
}

func TestConvertRejectsBadXML(t *testing.T) {
	reader := buildDocx(t, "<w:document><w:body><w:p>")
	_, err := Convert(reader, reader.Size())
	if !pkgerrors.IsCode(err, pkgerrors.CodeConversion) {
		t.Fatalf("expected CONVERSION_ERROR, got %v", err)
	}
}

func TestParseSkipsEmptyParagraphs(t *testing.T) {
	docXML := `<w:document xmlns:w="x"><w:body><w:p/><w:p><w:r><w:t>texto</w:t></w:r></w:p></w:body></w:document>`
	reader := buildDocx(t, docXML)
	doc, err := Parse(reader, reader.Size())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
}
