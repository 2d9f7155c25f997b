package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"niri-select/internal/compositor"
	"niri-select/internal/menu"
	"niri-select/internal/output"
	"niri-select/internal/version"
)

// mcpServer exposes the selection pipeline over MCP. Each tool call takes
// its own snapshot, so the results are as fresh as a CLI invocation.
type mcpServer struct {
	client compositor.Client
	mcp    *mcpserver.MCPServer
}

func newMCPServer() (*mcpServer, error) {
	client, err := newCompositor()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{client: client}
	s.mcp = mcpserver.NewMCPServer("niri-select", version.Version)
	s.registerTools()
	return s, nil
}

func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list-windows",
			mcp.WithDescription("List niri windows in picker order: focused workspace first, then visible workspaces, then the rest"),
			mcp.WithString("app-id", mcp.Description("Filter by app id; @focused uses the focused window's app id")),
			mcp.WithString("window-matching", mcp.Description("Filter by a JSON object of attribute/value pairs")),
			mcp.WithString("workspace", mcp.Description("Filter by workspace: JSON object or @focused/@active/@output")),
			mcp.WithBoolean("select-focused", mcp.Description("Rank the focused window first instead of last")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("list-workspaces",
			mcp.WithDescription("List niri workspaces in picker order"),
			mcp.WithString("workspace", mcp.Description("Filter: JSON object or @focused/@active/@output")),
			mcp.WithBoolean("select-focused", mcp.Description("Rank the focused workspace first instead of last")),
		),
		s.handleListWorkspaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus-window",
			mcp.WithDescription("Focus the niri window with the given id"),
			mcp.WithNumber("id", mcp.Description("Window id as returned by list-windows"), mcp.Required()),
		),
		s.handleFocusWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus-workspace",
			mcp.WithDescription("Switch to the niri workspace with the given id"),
			mcp.WithNumber("id", mcp.Description("Workspace id as returned by list-workspaces"), mcp.Required()),
		),
		s.handleFocusWorkspace,
	)
}

func (s *mcpServer) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	rules, err := parseRules(
		stringParam(params, "app-id", ""),
		stringParam(params, "window-matching", ""),
		stringParam(params, "workspace", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := s.client.Snapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cands, err := windowCandidates(snap, rules, boolParam(params, "select-focused", false))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return candidatesResult(cands)
}

func (s *mcpServer) handleListWorkspaces(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	rules, err := parseRules("", "", stringParam(params, "workspace", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := s.client.Snapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cands, err := workspaceCandidates(snap, rules.workspace, boolParam(params, "select-focused", false))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return candidatesResult(cands)
}

func (s *mcpServer) handleFocusWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := int64Param(request.GetArguments(), "id", 0)
	if id == 0 {
		return mcp.NewToolResultError("id is required"), nil
	}
	if err := s.client.FocusWindow(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("focused window %d", id)), nil
}

func (s *mcpServer) handleFocusWorkspace(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := int64Param(request.GetArguments(), "id", 0)
	if id == 0 {
		return mcp.NewToolResultError("id is required"), nil
	}

	snap, err := s.client.Snapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ws, ok := snap.WorkspaceByID(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no workspace with id %d", id)), nil
	}
	if err := s.client.FocusWorkspace(ws); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("focused workspace %d", id)), nil
}

func candidatesResult(cands []menu.Candidate) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(output.Rows(cands))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func int64Param(params map[string]interface{}, key string, def int64) int64 {
	if v, ok := params[key].(float64); ok {
		return int64(v)
	}
	return def
}
