package doctree

// HeadingNode is one heading of a parsed document together with the body
// text that follows it up to the first child heading.
type HeadingNode struct {
	Text        string         `json:"text"`         // Cleaned heading line, enumeration kept
	ParagraphNo int            `json:"paragraph_no"` // Source paragraph index, -1 for synthetic nodes
	Level       int            `json:"level"`        // 1 = top level; 0 only on synthetic nodes
	Children    []*HeadingNode `json:"children"`     // Subheadings in document order
	TextList    []string       `json:"text_list"`    // Body lines and rendered tables
}

// NewNode returns a node with empty, non-nil children and text list so that
// it encodes as [] rather than null.
func NewNode(text string, paragraphNo, level int) *HeadingNode {
	return &HeadingNode{
		Text:        text,
		ParagraphNo: paragraphNo,
		Level:       level,
		Children:    []*HeadingNode{},
		TextList:    []string{},
	}
}

// SyntheticParagraphNo marks nodes that do not come from a source paragraph.
const SyntheticParagraphNo = -1

// Walk visits every node of the forest in pre-order. Returning false from fn
// stops the walk.
func Walk(forest []*HeadingNode, fn func(*HeadingNode) bool) {
	var walk func(nodes []*HeadingNode) bool
	walk = func(nodes []*HeadingNode) bool {
		for _, n := range nodes {
			if !fn(n) {
				return false
			}
			if !walk(n.Children) {
				return false
			}
		}
		return true
	}
	walk(forest)
}

// ElementKind tells paragraphs and tables apart in an element stream.
type ElementKind int

const (
	ElementParagraph ElementKind = iota
	ElementTable
)

func (k ElementKind) String() string {
	switch k {
	case ElementParagraph:
		return "paragraph"
	case ElementTable:
		return "table"
	}
	return "unknown"
}

// Element is one body-level item of a source document.
type Element struct {
	Kind  ElementKind
	Text  string     // Paragraph text as found in the source
	Style string     // Paragraph style name, empty if none
	Rows  [][]string // Table cells, header row first
}

// Paragraph returns a paragraph element.
func Paragraph(text, style string) Element {
	return Element{Kind: ElementParagraph, Text: text, Style: style}
}

// Table returns a table element.
func Table(rows [][]string) Element {
	return Element{Kind: ElementTable, Rows: rows}
}
