package doctree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when interchange input cannot be turned back
// into a forest.
var ErrMalformed = errors.New("malformed heading tree")

// wireNode mirrors HeadingNode with pointer fields so missing keys and
// nulls can be told apart from zero values.
type wireNode struct {
	Text        *string     `json:"text"`
	ParagraphNo *int        `json:"paragraph_no"`
	Level       *int        `json:"level"`
	Children    *[]wireNode `json:"children"`
	TextList    *[]string   `json:"text_list"`
}

// Encode writes a forest as a JSON array of heading records. Non-ASCII text
// is kept as is and HTML characters are not escaped.
func Encode(forest []*HeadingNode) ([]byte, error) {
	if forest == nil {
		forest = []*HeadingNode{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalize(forest)); err != nil {
		return nil, fmt.Errorf("encode heading tree: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// normalize replaces nil slices with empty ones so the output never
// carries null lists.
func normalize(nodes []*HeadingNode) []*HeadingNode {
	out := make([]*HeadingNode, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		c := *n
		c.Children = normalize(n.Children)
		if c.TextList == nil {
			c.TextList = []string{}
		}
		out = append(out, &c)
	}
	return out
}

// Decode parses a JSON array of heading records. Every record must carry
// all five fields; anything else fails the whole decode.
func Decode(data []byte) ([]*HeadingNode, error) {
	var wire []wireNode
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if wire == nil {
		return nil, fmt.Errorf("%w: expected an array of records", ErrMalformed)
	}
	return fromWire(wire, "$")
}

func fromWire(wire []wireNode, path string) ([]*HeadingNode, error) {
	nodes := make([]*HeadingNode, 0, len(wire))
	for i, w := range wire {
		at := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case w.Text == nil:
			return nil, fmt.Errorf("%w: %s: missing text", ErrMalformed, at)
		case w.ParagraphNo == nil:
			return nil, fmt.Errorf("%w: %s: missing paragraph_no", ErrMalformed, at)
		case w.Level == nil:
			return nil, fmt.Errorf("%w: %s: missing level", ErrMalformed, at)
		case w.Children == nil:
			return nil, fmt.Errorf("%w: %s: missing children", ErrMalformed, at)
		case w.TextList == nil:
			return nil, fmt.Errorf("%w: %s: missing text_list", ErrMalformed, at)
		}
		children, err := fromWire(*w.Children, at+".children")
		if err != nil {
			return nil, err
		}
		textList := make([]string, len(*w.TextList))
		copy(textList, *w.TextList)
		nodes = append(nodes, &HeadingNode{
			Text:        *w.Text,
			ParagraphNo: *w.ParagraphNo,
			Level:       *w.Level,
			Children:    children,
			TextList:    textList,
		})
	}
	return nodes, nil
}
