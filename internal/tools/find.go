package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/dgallion1/docsplit/internal/doctree"
	"github.com/dgallion1/docsplit/internal/search"
)

// FindRequest looks up one section of a heading tree.
type FindRequest struct {
	Keyword    string   `json:"keyword" jsonschema:"heading text to look for; a leading 1.2.3 numbering is ignored"`
	SchemeJSON string   `json:"scheme_json" jsonschema:"heading tree JSON produced by docx_split"`
	Threshold  *float64 `json:"threshold,omitempty" jsonschema:"minimum fuzzy similarity from 0 to 100 used when no heading matches exactly"`
}

// FindResponse holds the flattened text of the best matching section, or ""
// when nothing matched.
type FindResponse struct {
	SchemeText string `json:"scheme_text"`
}

// Find decodes the tree, searches it for the keyword and flattens the first
// match with its subtree.
func (s *Service) Find(ctx context.Context, req FindRequest) (FindResponse, error) {
	defer s.stats.Since(ToolFind, time.Now())

	threshold := s.threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if threshold < 0 || threshold > 100 {
		return FindResponse{}, fmt.Errorf("%w: threshold %v outside [0,100]", ErrInvalidInput, threshold)
	}

	forest, err := doctree.Decode([]byte(req.SchemeJSON))
	if err != nil {
		return FindResponse{}, err
	}

	matches := search.Find(forest, req.Keyword, threshold)
	s.log.InfoContext(ctx, "find heading", "tool", ToolFind, "keyword", req.Keyword, "matches", len(matches))
	if len(matches) == 0 {
		return FindResponse{}, nil
	}
	return FindResponse{SchemeText: doctree.ExtractText(matches[0])}, nil
}
