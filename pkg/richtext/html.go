package richtext

import (
	"fmt"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// ToHTML serializes the document. Consecutive list blocks of the same
// kind share one <ul>/<ol>.
func ToHTML(d *Document) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	var openList BlockType

	closeList := func() {
		switch openList {
		case BlockBullet:
			b.WriteString("</ul>")
		case BlockNumbered:
			b.WriteString("</ol>")
		}
		openList = ""
	}

	for _, block := range d.Blocks {
		switch block.Type {
		case BlockBullet, BlockNumbered:
			if openList != block.Type {
				closeList()
				if block.Type == BlockBullet {
					b.WriteString("<ul>")
				} else {
					b.WriteString("<ol>")
				}
				openList = block.Type
			}
			b.WriteString("<li")
			writeAlign(&b, block.Align)
			b.WriteString(">")
			writeRuns(&b, block.Runs)
			b.WriteString("</li>")
		default:
			closeList()
			tag := blockTag(block.Type)
			b.WriteString("<" + tag)
			writeAlign(&b, block.Align)
			b.WriteString(">")
			writeRuns(&b, block.Runs)
			b.WriteString("</" + tag + ">")
		}
	}
	closeList()
	return b.String()
}

func blockTag(t BlockType) string {
	switch t {
	case BlockHeading1:
		return "h1"
	case BlockHeading2:
		return "h2"
	case BlockHeading3:
		return "h3"
	default:
		return "p"
	}
}

func writeAlign(b *strings.Builder, a Alignment) {
	if a != "" && a != AlignLeft {
		fmt.Fprintf(b, ` style="text-align:%s"`, a)
	}
}

func writeRuns(b *strings.Builder, runs []Run) {
	for _, r := range runs {
		text := html.EscapeString(r.Text)
		if r.Underline {
			text = "<u>" + text + "</u>"
		}
		if r.Italic {
			text = "<em>" + text + "</em>"
		}
		if r.Bold {
			text = "<strong>" + text + "</strong>"
		}
		b.WriteString(text)
	}
}

// FromHTML parses the supported HTML subset back into a document.
// Unknown elements degrade to paragraphs and plain runs; parsing
// never fails on malformed markup because the tokenizer recovers.
func FromHTML(content string) *Document {
	doc := New()
	root, err := xhtml.Parse(strings.NewReader(content))
	if err != nil {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			doc.AppendBlock(Paragraph(trimmed))
		}
		return doc
	}

	body := findBody(root)
	if body == nil {
		return doc
	}
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		parseBlockNode(doc, child, BlockParagraph)
	}
	return doc
}

func findBody(n *xhtml.Node) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == "body" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findBody(child); found != nil {
			return found
		}
	}
	return nil
}

func parseBlockNode(doc *Document, n *xhtml.Node, listKind BlockType) {
	switch n.Type {
	case xhtml.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			doc.AppendBlock(Paragraph(text))
		}
	case xhtml.ElementNode:
		switch n.Data {
		case "h1", "h2", "h3":
			level := int(n.Data[1] - '0')
			block := Heading(level, "")
			block.Runs = nil
			block.Align = alignFromNode(n)
			collectRuns(&block, n, Run{})
			doc.AppendBlock(block)
		case "h4", "h5", "h6":
			block := Heading(3, "")
			block.Runs = nil
			collectRuns(&block, n, Run{})
			doc.AppendBlock(block)
		case "ul":
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				parseBlockNode(doc, child, BlockBullet)
			}
		case "ol":
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				parseBlockNode(doc, child, BlockNumbered)
			}
		case "li":
			block := Block{Type: listKind, Align: alignFromNode(n)}
			collectRuns(&block, n, Run{})
			doc.AppendBlock(block)
		default:
			// p, div, blockquote and anything unrecognized all become
			// paragraphs carrying whatever styled runs they contain.
			block := Block{Type: BlockParagraph, Align: alignFromNode(n)}
			collectRuns(&block, n, Run{})
			if len(block.Runs) > 0 {
				doc.AppendBlock(block)
			}
		}
	}
}

func collectRuns(block *Block, n *xhtml.Node, style Run) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xhtml.TextNode:
			if child.Data == "" {
				continue
			}
			run := style
			run.Text = child.Data
			block.Runs = append(block.Runs, run)
		case xhtml.ElementNode:
			next := style
			switch child.Data {
			case "strong", "b":
				next.Bold = true
			case "em", "i":
				next.Italic = true
			case "u":
				next.Underline = true
			}
			collectRuns(block, child, next)
		}
	}
}

func alignFromNode(n *xhtml.Node) Alignment {
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		for _, decl := range strings.Split(attr.Val, ";") {
			parts := strings.SplitN(decl, ":", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[0]) != "text-align" {
				continue
			}
			switch Alignment(strings.TrimSpace(parts[1])) {
			case AlignCenter:
				return AlignCenter
			case AlignRight:
				return AlignRight
			case AlignJustify:
				return AlignJustify
			}
		}
	}
	return ""
}
