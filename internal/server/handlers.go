package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/tilectl/tilectl/internal/commands"
	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/state"
	"github.com/tilectl/tilectl/internal/tree"
)

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

// criteriaFromParams builds match criteria from tool parameters,
// dropping filters that fail to parse.
func (s *Server) criteriaFromParams(params map[string]interface{}) *criteria.Criteria {
	crit := criteria.New()
	add := func(kind, value string) {
		if value == "" {
			return
		}
		if err := crit.AddFilter(kind, value); err != nil {
			s.log.Warn().Err(err).Str("criterion", kind).Msg("dropping filter")
		}
	}
	for _, kind := range []string{"class", "instance", "window_role", "title", "con_mark"} {
		add(kind, stringParam(params, kind))
	}
	if id := intParam(params, "con_id", 0); id > 0 {
		add("con_id", strconv.Itoa(id))
	}
	if id := intParam(params, "window_id", -1); id >= 0 {
		add("id", strconv.Itoa(id))
	}
	return crit
}

func resultToText(res commands.Result) string {
	b, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Sprintf("success: %v\nerror: %s", res.Success, res.Error)
	}
	return string(b)
}

func (s *Server) handleRunCommand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	verb := stringParam(params, "verb")
	if verb == "" {
		return mcp.NewToolResultError("verb is required"), nil
	}
	args := strings.Fields(stringParam(params, "args"))
	crit := s.criteriaFromParams(params)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := state.Load(s.cfg.StatePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	engine := commands.New(t, s.log,
		commands.WithAutoBackAndForth(s.cfg.AutoBackAndForth))
	res := engine.Dispatch(verb, crit, args...)
	if err := state.Save(s.cfg.StatePath, t); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !res.Success {
		return mcp.NewToolResultError(resultToText(res)), nil
	}
	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *Server) handleGetTree(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := state.Load(s.cfg.StatePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := t.EncodeYAML()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListWorkspaces(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := state.Load(s.cfg.StatePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := yaml.Marshal(tree.WorkspaceInfos(t))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
