package doctree

import "strings"

// ExtractText flattens a node and its subtree into plain text: the heading,
// then its body lines, then each child on a new line, depth first.
func ExtractText(node *HeadingNode) string {
	if node == nil {
		return ""
	}
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node *HeadingNode) {
	sb.WriteString(node.Text)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(node.TextList, "\n"))
	for _, child := range node.Children {
		sb.WriteString("\n")
		writeNode(sb, child)
	}
}
