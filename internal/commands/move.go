package commands

import (
	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/tree"
)

// MoveToWorkspace moves every candidate to the workspace selected
// relative to the current one.
func (e *Engine) MoveToWorkspace(crit *criteria.Criteria, which WorkspaceTarget) Result {
	var ws *tree.Con
	switch which {
	case WorkspaceNext:
		ws = e.tree.NextWorkspace()
	case WorkspacePrev:
		ws = e.tree.PrevWorkspace()
	case WorkspaceNextOnOutput:
		ws = e.tree.NextWorkspaceOnOutput()
	case WorkspacePrevOnOutput:
		ws = e.tree.PrevWorkspaceOnOutput()
	}
	if ws == nil {
		return failf("no workspace found in direction %s", which)
	}

	for _, con := range e.candidates(crit) {
		e.tree.MoveConToWorkspace(con, ws)
	}

	e.relayout()
	return okResult
}

// MoveToWorkspaceName moves every candidate to the named workspace,
// creating it if needed. The workspace is only created when at least
// one candidate will actually move: with empty criteria and a focused
// workspace the command fails before looking the name up.
func (e *Engine) MoveToWorkspaceName(crit *criteria.Criteria, name string) Result {
	if tree.IsInternalName(name) {
		return failf("cannot move containers to internal workspaces")
	}
	if crit.IsEmpty() && e.tree.Focused().Type == tree.TypeWorkspace {
		return failf("nothing to move: the focused container is a workspace")
	}

	ws := e.tree.GetWorkspace(name)

	for _, con := range e.candidates(crit) {
		e.tree.MoveConToWorkspace(con, ws)
	}

	e.relayout()
	return okResult
}

// MoveDirection translates a floating container by px pixels, or
// performs a tree-order move for a tiling one. Floating moves only
// shift the origin; no dimension changes (unlike resize).
func (e *Engine) MoveDirection(dir tree.Direction, px int) Result {
	focused := e.tree.Focused()
	if wrapper := focused.FloatingWrapper(); wrapper != nil {
		switch dir {
		case tree.DirLeft:
			wrapper.Rect.X -= px
		case tree.DirRight:
			wrapper.Rect.X += px
		case tree.DirUp:
			wrapper.Rect.Y -= px
		default:
			wrapper.Rect.Y += px
		}
		e.relayout()
		return okResult
	}

	if err := e.tree.MoveDirection(dir.IsPrev(), dir.Orientation()); err != nil {
		return failf("%v", err)
	}
	e.relayout()
	return okResult
}

// MoveToOutput moves every candidate to the visible workspace of the
// resolved output.
func (e *Engine) MoveToOutput(crit *criteria.Criteria, name string) Result {
	cands := e.candidates(crit)
	if len(cands) == 0 {
		return failf("no container matched to derive the current output from")
	}
	current := e.outputForCandidate(cands[len(cands)-1])

	output := e.tree.OutputFromString(current, name)
	if output == nil {
		return failf("no such output: %s", name)
	}
	ws := output.VisibleWorkspace()
	if ws == nil {
		return failf("output %s has no visible workspace", output.Name)
	}

	for _, con := range cands {
		e.tree.MoveConToWorkspace(con, ws)
	}

	e.relayout()
	return okResult
}

// MoveWorkspaceToOutput relocates each candidate's workspace to the
// resolved output. A workspace that is the only one on its output is
// skipped, not failed. When the moved workspace was visible, the old
// output first shows the next workspace in its focus stack, and focus
// follows the moved workspace afterwards.
func (e *Engine) MoveWorkspaceToOutput(crit *criteria.Criteria, name string) Result {
	for _, con := range e.candidates(crit) {
		current := e.outputForCandidate(con)
		output := e.tree.OutputFromString(current, name)
		if output == nil {
			return failf("no such output: %s", name)
		}

		ws := con.Workspace()
		if ws == nil {
			continue
		}
		oldContent := ws.Parent
		if oldContent == nil || len(oldContent.Children) == 1 {
			e.log.Debug().Str("workspace", ws.Name).
				Msg("not moving workspace, it is the only one on its output")
			continue
		}
		if output.Content() == oldContent {
			continue
		}

		wasVisible := e.tree.IsWorkspaceVisible(ws)
		ws.Detach()
		if wasVisible && len(oldContent.FocusOrder) > 0 {
			// Give the old output a chance to show its new top before
			// focus follows the moved workspace.
			e.tree.ShowWorkspace(oldContent.FocusOrder[0])
		}
		ws.Attach(output.Content())
		e.notify("workspace", "move")
		if wasVisible {
			e.tree.ShowWorkspace(ws)
		}
	}

	e.relayout()
	return okResult
}

// MoveScratchpad relocates every candidate into the hidden scratchpad.
func (e *Engine) MoveScratchpad(crit *criteria.Criteria) Result {
	for _, con := range e.candidates(crit) {
		e.tree.MoveToScratchpad(con)
	}
	e.relayout()
	return okResult
}

// ScratchpadShow reveals scratchpad containers: the most recently used
// one for empty criteria, or each matched candidate specifically.
func (e *Engine) ScratchpadShow(crit *criteria.Criteria) Result {
	if crit.IsEmpty() {
		if shown := e.tree.ScratchpadShow(nil); shown == nil {
			return failf("the scratchpad is empty")
		}
		e.relayout()
		return okResult
	}

	shownAny := false
	for _, con := range criteria.Resolve(e.tree, crit) {
		if e.tree.ScratchpadShow(con) != nil {
			shownAny = true
		}
	}
	if !shownAny {
		return failf("no matched container is in the scratchpad")
	}
	e.relayout()
	return okResult
}
