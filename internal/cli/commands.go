package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docsplit/internal/mcptools"
	"github.com/dgallion1/docsplit/internal/tools"
)

// Version is set at build time.
var Version = "dev"

func newSplitCommand(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Print the heading tree of a .docx, .md or .html document",
		Long: `Print the heading tree of a document as {"schemeJson": "..."}.
Use "-" to read stdin; --name then supplies the file name that selects the format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			filename := name
			if filename == "" {
				filename = filepath.Base(args[0])
			}
			resp, err := a.svc.Split(cmd.Context(), bytes.NewReader(data), filename)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp, a.query)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "file name used to pick the format when reading stdin")
	return cmd
}

func newFindCommand(a *app) *cobra.Command {
	var (
		schemePath string
		req        tools.FindRequest
		threshold  float64
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the text of the section whose heading matches --keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := readSource(schemePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			req.SchemeJSON = string(scheme)
			if cmd.Flags().Changed("threshold") {
				req.Threshold = &threshold
			}
			resp, err := a.svc.Find(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp, a.query)
		},
	}
	cmd.Flags().StringVar(&schemePath, "scheme", "-", "heading tree JSON file, - for stdin")
	cmd.Flags().StringVarP(&req.Keyword, "keyword", "k", "", "heading text to look for")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "minimum fuzzy similarity (0-100); defaults to FUZZY_THRESHOLD")
	_ = cmd.MarkFlagRequired("keyword")
	return cmd
}

func newPostProcessCommand(a *app) *cobra.Command {
	var (
		schemePath string
		llmPath    string
		req        tools.PostProcessRequest
	)
	cmd := &cobra.Command{
		Use:   "post-process",
		Short: "Attach paragraph numbers to position/suggestion records in model output",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemePath == "-" && llmPath == "-" {
				return fmt.Errorf("%w: only one of --scheme and --llm may read stdin", tools.ErrInvalidInput)
			}
			scheme, err := readSource(schemePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			llm, err := readSource(llmPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			req.SchemeJSON = string(scheme)
			req.LLMResult = string(llm)
			resp, err := a.svc.PostProcess(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp, a.query)
		},
	}
	cmd.Flags().StringVar(&schemePath, "scheme", "", "heading tree JSON file, - for stdin")
	cmd.Flags().StringVar(&llmPath, "llm", "-", "model output file, - for stdin")
	cmd.Flags().StringVar(&req.Reference, "reference", "", "reference copied onto every record")
	cmd.Flags().StringVar(&req.Level, "level", "", "level copied onto every record")
	_ = cmd.MarkFlagRequired("scheme")
	return cmd
}

func newBranchCommand(a *app) *cobra.Command {
	var req tools.BranchRequest
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Report whether --key occurs in --requirements and its paired level",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.Branch(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp, a.query)
		},
	}
	cmd.Flags().StringVar(&req.Key, "key", "", "requirement key")
	cmd.Flags().StringVar(&req.Requirements, "requirements", "", "comma separated requirements")
	cmd.Flags().StringVar(&req.Levels, "levels", "", "comma separated levels, one per requirement")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tools over MCP on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcp.NewServer(&mcp.Implementation{Name: "docsplit", Version: Version}, nil)
			mcptools.Register(srv, a.svc)
			return srv.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
