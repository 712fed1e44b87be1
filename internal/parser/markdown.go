package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docsplit/internal/doctree"
)

// MarkdownLoader handles Markdown files using goldmark with GFM tables.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(r io.Reader, filename string) ([]doctree.Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	var elements []doctree.Element
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Heading:
				elements = append(elements, doctree.Paragraph(inlineText(node, src), headingStyle(node.Level)))
			case *ast.Paragraph, *ast.TextBlock:
				elements = append(elements, doctree.Paragraph(inlineText(node, src), ""))
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				elements = append(elements, doctree.Paragraph(blockLines(node, src), ""))
			case *east.Table:
				elements = append(elements, doctree.Table(markdownTableRows(node, src)))
			case *ast.List, *ast.ListItem, *ast.Blockquote:
				walk(node)
			}
		}
	}
	walk(doc)

	return elements, nil
}

func markdownTableRows(tbl *east.Table, src []byte) [][]string {
	var rows [][]string
	for r := tbl.FirstChild(); r != nil; r = r.NextSibling() {
		switch r.(type) {
		case *east.TableHeader, *east.TableRow:
		default:
			continue
		}
		var row []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			if cell, ok := c.(*east.TableCell); ok {
				row = append(row, inlineText(cell, src))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// inlineText concatenates the text segments under a block, keeping line
// breaks between source lines.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var collect func(ast.Node)
	collect = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				collect(c)
			}
		}
	}
	collect(n)
	return strings.TrimSpace(buf.String())
}

// blockLines returns the raw lines of a code block.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimSpace(buf.String())
}
