// Package server exposes the command engine over MCP so agents can
// drive the layout tree with the same verbs as the CLI.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/tilectl/tilectl/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport        string
	Port             int
	StatePath        string
	AutoBackAndForth bool
}

// Server wraps the MCP server. Tool calls share one state file, so a
// mutex serializes the load-dispatch-save cycles.
type Server struct {
	cfg Config
	log zerolog.Logger
	mu  sync.Mutex
	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with all tilectl tools.
func New(cfg Config, log zerolog.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.mcp = mcpserver.NewMCPServer("tilectl", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("run_command",
			mcp.WithDescription("Run a layout command (focus, move, resize, split, kill, workspace, ...) against the tree. Returns the command result."),
			mcp.WithString("verb", mcp.Required(), mcp.Description("Command verb, e.g. focus, move_to_workspace_name, resize, workspace")),
			mcp.WithString("args", mcp.Description("Whitespace-separated verb arguments")),
			mcp.WithString("class", mcp.Description("Match window class (regex)")),
			mcp.WithString("instance", mcp.Description("Match window instance (regex)")),
			mcp.WithString("window_role", mcp.Description("Match window role (regex)")),
			mcp.WithString("title", mcp.Description("Match window title (regex)")),
			mcp.WithString("con_mark", mcp.Description("Match container mark (regex)")),
			mcp.WithNumber("con_id", mcp.Description("Match container by id")),
			mcp.WithNumber("window_id", mcp.Description("Match container by native window id")),
		),
		s.handleRunCommand,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_tree",
			mcp.WithDescription("Dump the layout tree as YAML: outputs, workspaces, containers, focus order."),
		),
		s.handleGetTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_workspaces",
			mcp.WithDescription("List workspaces with their output, visibility, and focus."),
		),
		s.handleListWorkspaces,
	)
}
