package richtext

import (
	"strings"

	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
)

// The contract editor in the storefront admin is not a browser
// surface, so instead of delegating to a native editable region the
// document is a small structured model: an ordered list of blocks,
// each holding styled runs. Toolbar actions map to explicit
// transforms, and HTML only exists at the serialization boundary.

type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading1  BlockType = "heading1"
	BlockHeading2  BlockType = "heading2"
	BlockHeading3  BlockType = "heading3"
	BlockBullet    BlockType = "bullet"
	BlockNumbered  BlockType = "numbered"
)

type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

type Mark string

const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
)

// Run is a span of text sharing one style.
type Run struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// Block is one paragraph-level unit of the document.
type Block struct {
	Type  BlockType `json:"type"`
	Align Alignment `json:"align,omitempty"`
	Runs  []Run     `json:"runs"`
}

// Document is the ordered block list for one contract body.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Paragraph builds a plain paragraph block from text.
func Paragraph(text string) Block {
	return Block{Type: BlockParagraph, Runs: []Run{{Text: text}}}
}

// Heading builds a heading block at the given level (clamped to 1-3).
func Heading(level int, text string) Block {
	t := BlockHeading1
	switch {
	case level <= 1:
		t = BlockHeading1
	case level == 2:
		t = BlockHeading2
	default:
		t = BlockHeading3
	}
	return Block{Type: t, Runs: []Run{{Text: text}}}
}

// AppendBlock adds a block at the end and returns its index.
func (d *Document) AppendBlock(b Block) int {
	d.Blocks = append(d.Blocks, b)
	return len(d.Blocks) - 1
}

// InsertBlock places a block at index, shifting the rest down.
func (d *Document) InsertBlock(index int, b Block) error {
	if index < 0 || index > len(d.Blocks) {
		return pkgerrors.New(pkgerrors.CodeValidation, "block index out of range")
	}
	d.Blocks = append(d.Blocks, Block{})
	copy(d.Blocks[index+1:], d.Blocks[index:])
	d.Blocks[index] = b
	return nil
}

// RemoveBlock deletes the block at index.
func (d *Document) RemoveBlock(index int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Blocks = append(d.Blocks[:index], d.Blocks[index+1:]...)
	return nil
}

// SetBlockType retypes a block, the "heading"/"list" toolbar actions.
func (d *Document) SetBlockType(index int, t BlockType) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	switch t {
	case BlockParagraph, BlockHeading1, BlockHeading2, BlockHeading3, BlockBullet, BlockNumbered:
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown block type")
	}
	d.Blocks[index].Type = t
	return nil
}

// SetAlignment applies one of the alignment toolbar actions.
func (d *Document) SetAlignment(index int, a Alignment) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown alignment")
	}
	d.Blocks[index].Align = a
	return nil
}

// ToggleMark flips a style over the whole block: if any run lacks the
// mark it is applied everywhere, otherwise it is cleared everywhere.
// That matches how a toolbar bold button behaves over a selection.
func (d *Document) ToggleMark(index int, m Mark) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	runs := d.Blocks[index].Runs
	allSet := len(runs) > 0
	for _, r := range runs {
		if !markSet(r, m) {
			allSet = false
			break
		}
	}
	for i := range runs {
		setMark(&runs[i], m, !allSet)
	}
	return nil
}

// AppendText adds a run to a block, inheriting no styling.
func (d *Document) AppendText(index int, text string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Blocks[index].Runs = append(d.Blocks[index].Runs, Run{Text: text})
	return nil
}

// PlainText flattens the document for previews and search.
func (d *Document) PlainText() string {
	var lines []string
	for _, b := range d.Blocks {
		var sb strings.Builder
		for _, r := range b.Runs {
			sb.WriteString(r.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (d *Document) checkIndex(index int) error {
	if index < 0 || index >= len(d.Blocks) {
		return pkgerrors.New(pkgerrors.CodeValidation, "block index out of range")
	}
	return nil
}

func markSet(r Run, m Mark) bool {
	switch m {
	case MarkBold:
		return r.Bold
	case MarkItalic:
		return r.Italic
	case MarkUnderline:
		return r.Underline
	}
	return false
}

func setMark(r *Run, m Mark, on bool) {
	switch m {
	case MarkBold:
		r.Bold = on
	case MarkItalic:
		r.Italic = on
	case MarkUnderline:
		r.Underline = on
	}
}
