// Package docx extracts the main document part of an OOXML word file
// and renders it as HTML for the contract editor. Only the subset the
// editor itself understands survives: headings, paragraphs, list
// paragraphs, and bold/italic/underline runs.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/richtext"
)

const documentPart = "word/document.xml"

// Convert reads a .docx payload and returns its HTML approximation.
// Any structural failure (not a zip, missing document part, bad XML)
// maps to CONVERSION_ERROR so callers can refuse to create a record.
func Convert(r io.ReaderAt, size int64) (string, error) {
	doc, err := Parse(r, size)
	if err != nil {
		return "", err
	}
	return richtext.ToHTML(doc), nil
}

// Parse reads a .docx payload into the structured document model.
func Parse(r io.ReaderAt, size int64) (*richtext.Document, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConversion, err, "file is not a valid docx archive")
	}

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConversion, "docx archive has no document part")
	}

	rc, err := part.Open()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConversion, err, "open document part")
	}
	defer func() { _ = rc.Close() }()

	doc, err := parseDocumentXML(rc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConversion, err, "parse document xml")
	}
	return doc, nil
}

func parseDocumentXML(r io.Reader) (*richtext.Document, error) {
	decoder := xml.NewDecoder(r)
	doc := richtext.New()

	var (
		block      *richtext.Block
		inParaPr   bool
		inRunPr    bool
		runStyle   richtext.Run
		runText    strings.Builder
		collecting bool
	)

	flushRun := func() {
		if block == nil || runText.Len() == 0 {
			runText.Reset()
			return
		}
		run := runStyle
		run.Text = runText.String()
		block.Runs = append(block.Runs, run)
		runText.Reset()
	}

	flushBlock := func() {
		if block == nil {
			return
		}
		flushRun()
		if len(block.Runs) > 0 {
			doc.AppendBlock(*block)
		}
		block = nil
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				flushBlock()
				block = &richtext.Block{Type: richtext.BlockParagraph}
			case "pPr":
				inParaPr = true
			case "rPr":
				inRunPr = true
			case "pStyle":
				if inParaPr && block != nil {
					applyParagraphStyle(block, attrVal(t, "val"))
				}
			case "numPr":
				if inParaPr && block != nil {
					block.Type = richtext.BlockBullet
				}
			case "jc":
				if inParaPr && block != nil {
					applyJustification(block, attrVal(t, "val"))
				}
			case "r":
				flushRun()
				runStyle = richtext.Run{}
			case "b":
				if inRunPr && attrVal(t, "val") != "false" && attrVal(t, "val") != "0" {
					runStyle.Bold = true
				}
			case "i":
				if inRunPr && attrVal(t, "val") != "false" && attrVal(t, "val") != "0" {
					runStyle.Italic = true
				}
			case "u":
				if inRunPr && attrVal(t, "val") != "none" {
					runStyle.Underline = true
				}
			case "t":
				collecting = true
			case "tab":
				if collecting || block != nil {
					runText.WriteString(" ")
				}
			}
		case xml.CharData:
			if collecting {
				runText.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				collecting = false
			case "pPr":
				inParaPr = false
			case "rPr":
				inRunPr = false
			case "r":
				flushRun()
			case "p":
				flushBlock()
			}
		}
	}

	flushBlock()
	return doc, nil
}

func applyParagraphStyle(block *richtext.Block, style string) {
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "Ttulo1") || strings.EqualFold(style, "Title"):
		block.Type = richtext.BlockHeading1
	case strings.EqualFold(style, "Heading2"):
		block.Type = richtext.BlockHeading2
	case strings.EqualFold(style, "Heading3"):
		block.Type = richtext.BlockHeading3
	case strings.EqualFold(style, "ListParagraph"):
		block.Type = richtext.BlockBullet
	}
}

func applyJustification(block *richtext.Block, val string) {
	switch val {
	case "center":
		block.Align = richtext.AlignCenter
	case "right", "end":
		block.Align = richtext.AlignRight
	case "both", "distribute":
		block.Align = richtext.AlignJustify
	}
}

func attrVal(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
