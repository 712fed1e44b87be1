// Package builder reconstructs a document's heading hierarchy from its flat
// element stream.
package builder

import (
	"strings"

	"github.com/dgallion1/docsplit/internal/doctree"
	"github.com/dgallion1/docsplit/internal/heading"
)

// TablePlaceholder is the heading text of the synthetic node that holds a
// table appearing before any heading.
const TablePlaceholder = "[表格]"

// Build walks the elements once and returns the forest of heading nodes.
//
// Paragraph text that precedes the first heading is dropped, as is any
// heading above level 1 that has no ancestor with a smaller level.
func Build(elements []doctree.Element) []*doctree.HeadingNode {
	forest := []*doctree.HeadingNode{}
	var stack []*doctree.HeadingNode
	paraIndex := -1

	for _, el := range elements {
		switch el.Kind {
		case doctree.ElementParagraph:
			paraIndex++
			text := heading.Clean(el.Text)
			if text == "" {
				continue
			}

			level := heading.Classify(text, el.Style)
			switch {
			case level == 0:
				if len(stack) > 0 {
					top := stack[len(stack)-1]
					top.TextList = append(top.TextList, text)
				}
			case level == 1:
				node := doctree.NewNode(text, paraIndex, level)
				forest = append(forest, node)
				stack = []*doctree.HeadingNode{node}
			default:
				for len(stack) > 0 && stack[len(stack)-1].Level >= level {
					stack = stack[:len(stack)-1]
				}
				if len(stack) == 0 {
					continue
				}
				node := doctree.NewNode(text, paraIndex, level)
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
				stack = append(stack, node)
			}

		case doctree.ElementTable:
			rows := make([][]string, len(el.Rows))
			for i, row := range el.Rows {
				rows[i] = make([]string, len(row))
				for j, cell := range row {
					rows[i][j] = heading.Clean(cell)
				}
			}
			md := TableMarkdown(rows)

			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.TextList = append(top.TextList, md)
				continue
			}
			node := doctree.NewNode(TablePlaceholder, doctree.SyntheticParagraphNo, 0)
			node.TextList = append(node.TextList, md)
			forest = append(forest, node)
		}
	}

	return forest
}

// TableMarkdown renders rows as a markdown table with the first row as
// header. Double spaces are collapsed once across the whole rendering and
// the result ends with a newline; an empty table renders as "".
func TableMarkdown(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	headers := rows[0]
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, markdownRow(headers), markdownRow(separators))
	for _, row := range rows[1:] {
		lines = append(lines, markdownRow(row))
	}

	md := strings.ReplaceAll(strings.Join(lines, "\n"), "  ", " ")
	return md + "\n"
}

func markdownRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
