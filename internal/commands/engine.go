// Package commands implements the tree-mutation command engine: one
// operation per verb, each consuming a resolved candidate set and
// mutating the shared container tree.
package commands

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/tree"
)

// Result is the reply contract for a command: a success flag plus a
// human-readable reason on failure. Some verbs report the id of a
// container they created.
type Result struct {
	Success bool   `yaml:"success"         json:"success"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
	ID      int    `yaml:"id,omitempty"    json:"id,omitempty"`
}

var okResult = Result{Success: true}

func failf(format string, args ...interface{}) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Engine executes verbs against a container tree. Commands run one at
// a time to completion; every mutating verb triggers the relayout hook
// before returning.
type Engine struct {
	tree     *tree.Tree
	log      zerolog.Logger
	relayout func()
	notify   func(event, change string)
	journal  *Journal

	autoBackAndForth bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRelayout sets the hook invoked after every mutation. The engine
// computes no geometry itself; painting is the collaborator's job.
func WithRelayout(fn func()) Option {
	return func(e *Engine) { e.relayout = fn }
}

// WithNotify sets the fire-and-forget event hook (workspace changes).
func WithNotify(fn func(event, change string)) Option {
	return func(e *Engine) { e.notify = fn }
}

// WithJournal records every dispatched (verb, criteria, args) tuple.
func WithJournal(j *Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithAutoBackAndForth makes switching to the already-visible workspace
// bounce back to the previous one instead of failing benignly.
func WithAutoBackAndForth(on bool) Option {
	return func(e *Engine) { e.autoBackAndForth = on }
}

// New builds an engine over t.
func New(t *tree.Tree, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		tree:     t,
		log:      log,
		relayout: func() {},
		notify:   func(event, change string) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree exposes the engine's tree for inspection (the `tree` command and
// tests).
func (e *Engine) Tree() *tree.Tree {
	return e.tree
}

// candidates applies the empty-criteria default rule: empty criteria
// resolve to the single focused container, never the whole tree.
// Criteria that were given but matched nothing resolve to nothing.
func (e *Engine) candidates(c *criteria.Criteria) []*tree.Con {
	if c.IsEmpty() {
		return []*tree.Con{e.tree.Focused()}
	}
	return criteria.Resolve(e.tree, c)
}

// Dispatch validates a verb's string arguments once, converts them to
// typed values, and runs the operation. It is the single entry point
// used by the CLI, the MCP server, and journal replay.
func (e *Engine) Dispatch(verb string, crit *criteria.Criteria, args ...string) Result {
	if e.journal != nil {
		e.journal.Record(verb, crit, args)
	}
	if crit == nil {
		crit = criteria.New()
	}

	switch verb {
	case "move_to_workspace":
		if len(args) != 1 {
			return failf("move_to_workspace takes exactly one argument")
		}
		which, ok := parseWorkspaceTarget(args[0])
		if !ok {
			return failf("invalid workspace target: %s", args[0])
		}
		return e.MoveToWorkspace(crit, which)
	case "move_to_workspace_name":
		if len(args) != 1 {
			return failf("move_to_workspace_name takes exactly one argument")
		}
		return e.MoveToWorkspaceName(crit, args[0])
	case "resize":
		if len(args) != 4 {
			return failf("resize takes way, direction, px, ppt")
		}
		way, ok := parseResizeWay(args[0])
		if !ok {
			return failf("invalid resize mode: %s", args[0])
		}
		dir, ok := tree.ParseDirection(args[1])
		if !ok {
			return failf("invalid direction: %s", args[1])
		}
		px, err := strconv.Atoi(args[2])
		if err != nil {
			return failf("invalid pixel amount: %s", args[2])
		}
		ppt, err := strconv.Atoi(args[3])
		if err != nil {
			return failf("invalid percentage-point amount: %s", args[3])
		}
		return e.Resize(crit, way, dir, px, ppt)
	case "border":
		if len(args) != 1 {
			return failf("border takes exactly one argument")
		}
		return e.Border(crit, args[0])
	case "split":
		if len(args) != 1 || len(args[0]) == 0 {
			return failf("split takes a direction")
		}
		return e.Split(crit, args[0])
	case "kill":
		mode := "window"
		if len(args) == 1 {
			mode = args[0]
		} else if len(args) > 1 {
			return failf("kill takes at most one argument")
		}
		killMode, ok := parseKillMode(mode)
		if !ok {
			return failf("invalid kill mode: %s", mode)
		}
		return e.Kill(crit, killMode)
	case "focus":
		if len(args) != 0 {
			return failf("focus takes no arguments")
		}
		return e.Focus(crit)
	case "focus_direction":
		if len(args) != 1 {
			return failf("focus_direction takes a direction")
		}
		dir, ok := tree.ParseDirection(args[0])
		if !ok {
			return failf("invalid focus direction: %s", args[0])
		}
		return e.FocusDirection(dir)
	case "focus_window_mode":
		if len(args) != 1 {
			return failf("focus_window_mode takes a mode")
		}
		mode, ok := parseWindowMode(args[0])
		if !ok {
			return failf("invalid window mode: %s", args[0])
		}
		return e.FocusWindowMode(mode)
	case "focus_level":
		if len(args) != 1 || (args[0] != "parent" && args[0] != "child") {
			return failf("focus_level takes parent or child")
		}
		return e.FocusLevel(args[0] == "parent")
	case "focus_output":
		if len(args) != 1 {
			return failf("focus_output takes an output name or direction")
		}
		return e.FocusOutput(crit, args[0])
	case "fullscreen":
		mode := tree.FullscreenOutput
		if len(args) == 1 {
			var ok bool
			mode, ok = parseFullscreenMode(args[0])
			if !ok {
				return failf("invalid fullscreen mode: %s", args[0])
			}
		} else if len(args) > 1 {
			return failf("fullscreen takes at most one argument")
		}
		return e.Fullscreen(crit, mode)
	case "move_direction":
		if len(args) != 2 {
			return failf("move_direction takes direction and px")
		}
		dir, ok := tree.ParseDirection(args[0])
		if !ok {
			return failf("invalid direction: %s", args[0])
		}
		px, err := strconv.Atoi(args[1])
		if err != nil {
			return failf("invalid pixel amount: %s", args[1])
		}
		return e.MoveDirection(dir, px)
	case "layout":
		if len(args) != 1 {
			return failf("layout takes exactly one argument")
		}
		layout, ok := parseLayout(args[0])
		if !ok {
			return failf("invalid layout: %s", args[0])
		}
		return e.Layout(crit, layout)
	case "mark":
		if len(args) != 1 {
			return failf("mark takes exactly one argument")
		}
		return e.Mark(crit, args[0])
	case "move_to_output":
		if len(args) != 1 {
			return failf("move_to_output takes an output name or direction")
		}
		return e.MoveToOutput(crit, args[0])
	case "move_workspace_to_output":
		if len(args) != 1 {
			return failf("move_workspace_to_output takes an output name or direction")
		}
		return e.MoveWorkspaceToOutput(crit, args[0])
	case "workspace":
		if len(args) != 1 {
			return failf("workspace takes exactly one argument")
		}
		if which, ok := parseWorkspaceTarget(args[0]); ok {
			return e.WorkspaceRelative(which)
		}
		if args[0] == "back_and_forth" {
			return e.WorkspaceBackAndForth()
		}
		return e.WorkspaceName(args[0])
	case "floating":
		if len(args) != 1 {
			return failf("floating takes exactly one argument")
		}
		mode, ok := parseFloatingMode(args[0])
		if !ok {
			return failf("invalid floating mode: %s", args[0])
		}
		return e.Floating(crit, mode)
	case "open":
		if len(args) != 0 {
			return failf("open takes no arguments")
		}
		return e.Open()
	case "nop":
		comment := ""
		if len(args) > 0 {
			comment = args[0]
		}
		return e.Nop(comment)
	case "move_scratchpad":
		if len(args) != 0 {
			return failf("move_scratchpad takes no arguments")
		}
		return e.MoveScratchpad(crit)
	case "scratchpad_show":
		if len(args) != 0 {
			return failf("scratchpad_show takes no arguments")
		}
		return e.ScratchpadShow(crit)
	default:
		return failf("unknown command: %s", verb)
	}
}
