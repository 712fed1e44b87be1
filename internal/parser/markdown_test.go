package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/docsplit/internal/doctree"
)

func TestMarkdownLoader_Elements(t *testing.T) {
	input := `# 第一章 总则

本章节描述目标。

## 1.1 范围

| 名称 | 值 |
| --- | --- |
| a | 1 |

- 列表一
- 列表二

> 引用内容
`
	l := &MarkdownLoader{}
	elements, err := l.Load(strings.NewReader(input), "doc.md")
	require.NoError(t, err)

	assert.Equal(t, []doctree.Element{
		doctree.Paragraph("第一章 总则", "Heading 1"),
		doctree.Paragraph("本章节描述目标。", ""),
		doctree.Paragraph("1.1 范围", "Heading 2"),
		doctree.Table([][]string{{"名称", "值"}, {"a", "1"}}),
		doctree.Paragraph("列表一", ""),
		doctree.Paragraph("列表二", ""),
		doctree.Paragraph("引用内容", ""),
	}, elements)
}

func TestMarkdownLoader_InlineMarkupFlattened(t *testing.T) {
	l := &MarkdownLoader{}
	elements, err := l.Load(strings.NewReader("# 第二章 **职责**\n\n使用 `go` 构建。\n"), "doc.md")
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "第二章 职责", elements[0].Text)
	assert.Equal(t, "使用 go 构建。", elements[1].Text)
}

func TestMarkdownLoader_CodeBlock(t *testing.T) {
	l := &MarkdownLoader{}
	elements, err := l.Load(strings.NewReader("# 示例\n\n```\nx = 1\n```\n"), "doc.md")
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "x = 1", elements[1].Text)
}

func TestMarkdownLoader_Empty(t *testing.T) {
	l := &MarkdownLoader{}
	elements, err := l.Load(strings.NewReader(""), "empty.md")
	require.NoError(t, err)
	assert.Empty(t, elements)
}
