package tools

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// BranchRequest decides whether a requirement key is active.
type BranchRequest struct {
	Key          string `json:"key" jsonschema:"requirement key to look for"`
	Requirements string `json:"requirements" jsonschema:"comma separated requirement names"`
	Levels       string `json:"levels" jsonschema:"comma separated levels, one per requirement"`
}

// BranchResponse reports "1" in Activated when the key occurs in the
// requirements, with the level paired to the first requirement holding it.
type BranchResponse struct {
	Activated string `json:"activated"`
	Level     string `json:"level"`
}

// Branch reports whether the key occurs in the requirements and which level
// goes with it.
func (s *Service) Branch(ctx context.Context, req BranchRequest) (BranchResponse, error) {
	defer s.stats.Since(ToolBranch, time.Now())

	resp := BranchResponse{Activated: "0"}
	if !strings.Contains(req.Requirements, req.Key) {
		return resp, nil
	}

	resp.Activated = "1"
	levels := strings.Split(req.Levels, ",")
	for i, r := range strings.Split(req.Requirements, ",") {
		if !strings.Contains(r, req.Key) {
			continue
		}
		if i >= len(levels) {
			return BranchResponse{}, fmt.Errorf("%w: no level for requirement %d (%q)", ErrInvalidInput, i, r)
		}
		resp.Level = levels[i]
		break
	}

	s.log.DebugContext(ctx, "branch decided", "tool", ToolBranch, "key", req.Key, "activated", resp.Activated, "level", resp.Level)
	return resp, nil
}
