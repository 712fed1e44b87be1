// Package tools implements the document tools exposed over HTTP, MCP and
// the command line: split, find, post-process and branch.
package tools

import (
	"errors"
	"log/slog"

	"github.com/dgallion1/docsplit/internal/config"
	"github.com/dgallion1/docsplit/internal/metrics"
)

// ErrInvalidInput is returned for tool arguments that cannot be acted on.
var ErrInvalidInput = errors.New("invalid input")

// Tool names, used for logging and latency stats.
const (
	ToolSplit       = "docx_split"
	ToolFind        = "docx_find"
	ToolPostProcess = "post_process"
	ToolBranch      = "branch"
)

// Service runs tool invocations. It holds no per-document state, so one
// Service can serve concurrent callers.
type Service struct {
	log   *slog.Logger
	stats *metrics.Registry

	threshold          float64
	defaultParagraphNo int
}

// NewService returns a Service using the search settings from cfg. A nil
// stats registry or logger is replaced with a fresh registry or slog.Default.
func NewService(cfg config.Config, stats *metrics.Registry, log *slog.Logger) *Service {
	if stats == nil {
		stats = metrics.NewRegistry(cfg.StatsWindow)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		log:                log,
		stats:              stats,
		threshold:          cfg.FuzzyThreshold,
		defaultParagraphNo: cfg.DefaultParagraphNo,
	}
}

// Stats returns the latency registry tool calls are recorded in.
func (s *Service) Stats() *metrics.Registry {
	return s.stats
}
