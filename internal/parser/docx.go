package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/docsplit/internal/doctree"
)

// DOCXLoader handles .docx files.
type DOCXLoader struct{}

func (l *DOCXLoader) Load(r io.Reader, filename string) ([]doctree.Element, error) {
	// go-docx needs a ReaderAt+size.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx %s: %w", filename, err)
	}

	return docxElements(doc.Document.Body.Items), nil
}

// docxElements keeps body paragraphs and tables in document order. Other
// body items (section properties, bookmarks) are skipped.
func docxElements(items []interface{}) []doctree.Element {
	var elements []doctree.Element
	for _, item := range items {
		switch it := item.(type) {
		case *docx.Paragraph:
			elements = append(elements, doctree.Paragraph(docxParagraphText(it), docxStyleName(it)))
		case *docx.Table:
			elements = append(elements, doctree.Table(docxTableRows(it)))
		}
	}
	return elements
}

// docxStyleName maps a paragraph's style id to the display name Word shows
// for built-in styles, e.g. "Heading2" to "Heading 2" and "TOC1" to "toc 1".
// Custom style ids are returned unchanged.
func docxStyleName(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	id := para.Properties.Style.Val
	lower := strings.ToLower(id)
	for prefix, name := range map[string]string{"heading": "Heading ", "toc": "toc "} {
		rest, ok := strings.CutPrefix(lower, prefix)
		if !ok || rest == "" {
			continue
		}
		if strings.Trim(rest, "0123456789") == "" {
			return name + rest
		}
	}
	return id
}

// docxParagraphText joins the text of the paragraph's runs, hyperlinks
// included, writing tabs as "\t" and breaks as "\n".
func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&buf, c)
		case *docx.Hyperlink:
			writeRunText(&buf, &c.Run)
		}
	}
	return buf.String()
}

func writeRunText(buf *strings.Builder, run *docx.Run) {
	for _, rc := range run.Children {
		switch t := rc.(type) {
		case *docx.Text:
			buf.WriteString(t.Text)
		case *docx.Tab:
			buf.WriteByte('\t')
		case *docx.BarterRabbet:
			buf.WriteByte('\n')
		}
	}
}

// docxTableRows returns one entry per grid row with the text of each grid
// column. A cell holding several paragraphs is joined with newlines, a cell
// spanning n columns is repeated n times, and a vertically continued cell
// repeats the text of the cell above it.
func docxTableRows(tbl *docx.Table) [][]string {
	rows := make([][]string, 0, len(tbl.TableRows))
	var above []string
	for _, tr := range tbl.TableRows {
		if tr == nil {
			continue
		}
		row := make([]string, 0, len(tr.TableCells))
		for _, tc := range tr.TableCells {
			if tc == nil {
				row = append(row, "")
				continue
			}
			text := docxCellText(tc)
			props := tc.TableCellProperties
			if props != nil && props.VMerge != nil && props.VMerge.Val != "restart" && len(row) < len(above) {
				text = above[len(row)]
			}
			span := 1
			if props != nil && props.GridSpan != nil && props.GridSpan.Val > 1 {
				span = props.GridSpan.Val
			}
			for range span {
				row = append(row, text)
			}
		}
		rows = append(rows, row)
		above = row
	}
	return rows
}

func docxCellText(tc *docx.WTableCell) string {
	lines := make([]string, 0, len(tc.Paragraphs))
	for _, p := range tc.Paragraphs {
		lines = append(lines, docxParagraphText(p))
	}
	return strings.Join(lines, "\n")
}
