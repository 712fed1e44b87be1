package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/docsplit/internal/doctree"
)

func TestHTMLLoader_Elements(t *testing.T) {
	input := `<html><head><title>t</title><style>p { color: red; }</style></head><body>
<nav><p>导航</p></nav>
<h1>第一章 总则</h1>
<p>本章节描述目标。</p>
<h2>1.1 范围</h2>
<table>
  <thead><tr><th>名称</th><th>值</th></tr></thead>
  <tbody><tr><td>a</td><td>1</td></tr></tbody>
</table>
<ul><li>条目</li></ul>
<script>var x = 1;</script>
</body></html>`

	l := &HTMLLoader{}
	elements, err := l.Load(strings.NewReader(input), "doc.html")
	require.NoError(t, err)

	assert.Equal(t, []doctree.Element{
		doctree.Paragraph("第一章 总则", "Heading 1"),
		doctree.Paragraph("本章节描述目标。", ""),
		doctree.Paragraph("1.1 范围", "Heading 2"),
		doctree.Table([][]string{{"名称", "值"}, {"a", "1"}}),
		doctree.Paragraph("条目", ""),
	}, elements)
}

func TestHTMLLoader_ImplicitTbody(t *testing.T) {
	l := &HTMLLoader{}
	elements, err := l.Load(strings.NewReader(`<table><tr><td>x</td></tr><tr><td>y</td></tr></table>`), "t.htm")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, [][]string{{"x"}, {"y"}}, elements[0].Rows)
}

func TestHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, headingLevel("h1"))
	assert.Equal(t, 6, headingLevel("h6"))
	assert.Equal(t, 0, headingLevel("p"))
}
