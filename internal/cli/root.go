// Package cli implements the docsplit command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsplit/internal/config"
	"github.com/dgallion1/docsplit/internal/metrics"
	"github.com/dgallion1/docsplit/internal/tools"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg   config.Config
	svc   *tools.Service
	query string
}

// NewRootCommand returns the docsplit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "docsplit",
		Short: "Split documents into heading trees and look sections up",
		Long: `docsplit builds the heading hierarchy of a word-processor document and
finds sections in it by heading text.

Environment Variables:
  DOCSPLIT_CONFIG   YAML config file
  FUZZY_THRESHOLD   Minimum similarity (0-100) for fuzzy heading matches
  LOG_LEVEL         debug, info, warn or error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.SlogLevel()
			log := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			a.cfg = cfg
			a.svc = tools.NewService(cfg, metrics.NewRegistry(cfg.StatsWindow), log)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.query, "query", "q", "", "jq expression applied to the JSON output")

	root.AddCommand(
		newSplitCommand(a),
		newFindCommand(a),
		newPostProcessCommand(a),
		newBranchCommand(a),
		newMCPCommand(a),
	)
	return root
}

// Execute runs the command tree with os.Args and reports failures as a
// single JSON error line on stderr.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		writeError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// readSource reads a file argument; "-" means stdin.
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
