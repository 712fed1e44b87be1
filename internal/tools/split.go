package tools

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dgallion1/docsplit/internal/builder"
	"github.com/dgallion1/docsplit/internal/doctree"
	"github.com/dgallion1/docsplit/internal/parser"
)

// SplitResponse carries the heading tree as interchange JSON.
type SplitResponse struct {
	SchemeJSON string `json:"schemeJson"`
}

// Split loads a document, builds its heading tree and encodes it.
func (s *Service) Split(ctx context.Context, r io.Reader, filename string) (SplitResponse, error) {
	defer s.stats.Since(ToolSplit, time.Now())
	log := s.log.With("tool", ToolSplit, "filename", filename)

	loader, err := parser.ForFile(filename)
	if err != nil {
		return SplitResponse{}, err
	}
	elements, err := loader.Load(r, filename)
	if err != nil {
		log.ErrorContext(ctx, "load failed", "error", err)
		return SplitResponse{}, fmt.Errorf("load %s: %w", filename, err)
	}

	forest := builder.Build(elements)
	data, err := doctree.Encode(forest)
	if err != nil {
		return SplitResponse{}, err
	}

	log.InfoContext(ctx, "split document", "elements", len(elements), "roots", len(forest), "nodes", countNodes(forest))
	return SplitResponse{SchemeJSON: string(data)}, nil
}

func countNodes(forest []*doctree.HeadingNode) int {
	n := 0
	doctree.Walk(forest, func(*doctree.HeadingNode) bool {
		n++
		return true
	})
	return n
}
