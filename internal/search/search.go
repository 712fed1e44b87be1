// Package search locates heading nodes by their normalized text.
package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/dgallion1/docsplit/internal/doctree"
	"github.com/dgallion1/docsplit/internal/heading"
)

// DefaultThreshold is the minimum similarity, on a 0-100 scale, for a fuzzy
// match.
const DefaultThreshold = 30

// Find returns every node whose normalized heading equals the normalized
// query. Only when there is none does it fall back to nodes whose
// similarity to the query is at least threshold. Results are in pre-order.
func Find(forest []*doctree.HeadingNode, query string, threshold float64) []*doctree.HeadingNode {
	q := heading.StripEnumeration(query)

	var exact []*doctree.HeadingNode
	doctree.Walk(forest, func(n *doctree.HeadingNode) bool {
		if heading.StripEnumeration(n.Text) == q {
			exact = append(exact, n)
		}
		return true
	})
	if len(exact) > 0 {
		return exact
	}

	var fuzzy []*doctree.HeadingNode
	doctree.Walk(forest, func(n *doctree.HeadingNode) bool {
		if Similarity(q, heading.StripEnumeration(n.Text)) >= threshold {
			fuzzy = append(fuzzy, n)
		}
		return true
	})
	return fuzzy
}

// FindContaining returns, in pre-order, every node whose normalized heading
// contains the normalized query.
func FindContaining(forest []*doctree.HeadingNode, query string) []*doctree.HeadingNode {
	q := heading.StripEnumeration(query)

	var matches []*doctree.HeadingNode
	doctree.Walk(forest, func(n *doctree.HeadingNode) bool {
		if strings.Contains(heading.StripEnumeration(n.Text), q) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// Similarity is the matching-block ratio of a and b scaled to 0-100,
// compared code point by code point. Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(runes(a), runes(b))
	return m.Ratio() * 100
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
