// Package mcptools exposes the document tools on an MCP server.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dgallion1/docsplit/internal/tools"
)

// Register adds docx_split, docx_find, post_process and branch to srv.
func Register(srv *mcp.Server, svc *tools.Service) {
	registerSplit(srv, svc)
	registerFind(srv, svc)
	registerPostProcess(srv, svc)
	registerBranch(srv, svc)
}

// --- docx_split ---

type splitInput struct {
	Path string `json:"path" jsonschema:"path of a .docx, .md or .html file"`
}

func registerSplit(srv *mcp.Server, svc *tools.Service) {
	tool := &mcp.Tool{
		Name:        tools.ToolSplit,
		Description: "Build the heading tree of a document and return it as schemeJson.",
	}
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in splitInput) (*mcp.CallToolResult, any, error) {
		f, err := os.Open(in.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", in.Path, err)
		}
		defer f.Close()

		resp, err := svc.Split(ctx, f, filepath.Base(in.Path))
		if err != nil {
			return nil, nil, err
		}
		return textResult(resp)
	})
}

// --- docx_find ---

func registerFind(srv *mcp.Server, svc *tools.Service) {
	tool := &mcp.Tool{
		Name:        tools.ToolFind,
		Description: "Find the section whose heading matches keyword and return its text with all subsections.",
	}
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.FindRequest) (*mcp.CallToolResult, any, error) {
		resp, err := svc.Find(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return textResult(resp)
	})
}

// --- post_process ---

func registerPostProcess(srv *mcp.Server, svc *tools.Service) {
	tool := &mcp.Tool{
		Name:        tools.ToolPostProcess,
		Description: "Extract position/suggestion records from model output and attach the paragraph number of each position.",
	}
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.PostProcessRequest) (*mcp.CallToolResult, any, error) {
		resp, err := svc.PostProcess(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return textResult(resp)
	})
}

// --- branch ---

func registerBranch(srv *mcp.Server, svc *tools.Service) {
	tool := &mcp.Tool{
		Name:        tools.ToolBranch,
		Description: "Report whether key occurs in the comma separated requirements and the level paired with it.",
	}
	mcp.AddTool(srv, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.BranchRequest) (*mcp.CallToolResult, any, error) {
		resp, err := svc.Branch(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return textResult(resp)
	})
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
