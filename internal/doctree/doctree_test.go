package doctree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []*HeadingNode {
	root := NewNode("第一章 总则", 0, 1)
	root.TextList = append(root.TextList, "本章节描述目标。")
	child := NewNode("1.1 范围", 2, 2)
	root.Children = append(root.Children, child)
	return []*HeadingNode{root, NewNode("第二章 附则", 3, 1)}
}

func TestEncode_EmptyListsAsArrays(t *testing.T) {
	data, err := Encode([]*HeadingNode{{Text: "第一章", Level: 1}})
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"第一章","paragraph_no":0,"level":1,"children":[],"text_list":[]}]`, string(data))
}

func TestEncode_NilForest(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	data, err := Encode([]*HeadingNode{NewNode("a<b & c>", 0, 1)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a<b & c>"`)
}

func TestRoundTrip(t *testing.T) {
	forest := sampleForest()
	data, err := Encode(forest)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, forest, decoded)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"not json", `{`, ""},
		{"object", `{}`, ""},
		{"null", `null`, "expected an array"},
		{"missing text_list", `[{"text":"a","paragraph_no":0,"level":1,"children":[]}]`, "$[0]: missing text_list"},
		{"null children", `[{"text":"a","paragraph_no":0,"level":1,"children":null,"text_list":[]}]`, "missing children"},
		{"missing level in child", `[{"text":"a","paragraph_no":0,"level":1,"text_list":[],"children":[{"text":"b","paragraph_no":1,"children":[],"text_list":[]}]}]`, "$[0].children[0]: missing level"},
		{"wrong type", `[{"text":1,"paragraph_no":0,"level":1,"children":[],"text_list":[]}]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	forest, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, forest)
}

func TestWalk_PreOrder(t *testing.T) {
	var seen []string
	Walk(sampleForest(), func(n *HeadingNode) bool {
		seen = append(seen, n.Text)
		return true
	})
	assert.Equal(t, []string{"第一章 总则", "1.1 范围", "第二章 附则"}, seen)
}

func TestWalk_Stop(t *testing.T) {
	var seen []string
	Walk(sampleForest(), func(n *HeadingNode) bool {
		seen = append(seen, n.Text)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"第一章 总则", "1.1 范围"}, seen)
}

func TestExtractText(t *testing.T) {
	a := NewNode("A", 0, 1)
	a.TextList = []string{"x", "y"}
	b := NewNode("B", 1, 2)
	c := NewNode("C", 2, 2)
	c.TextList = []string{"z"}
	a.Children = []*HeadingNode{b, c}

	assert.Equal(t, "A\nx\ny\nB\n\nC\nz", ExtractText(a))
	assert.Equal(t, "B\n", ExtractText(b))
	assert.Equal(t, "", ExtractText(nil))
}

func TestExtractText_Scenario(t *testing.T) {
	forest := sampleForest()
	assert.Equal(t, "第一章 总则\n本章节描述目标。\n1.1 范围\n", ExtractText(forest[0]))
}

func TestElementKindString(t *testing.T) {
	assert.Equal(t, "paragraph", ElementParagraph.String())
	assert.Equal(t, "table", ElementTable.String())
}
