package commands

import "github.com/tilectl/tilectl/internal/tree"

// WorkspaceRelative switches to the workspace selected relative to the
// current one (next/prev, globally or on the current output).
func (e *Engine) WorkspaceRelative(which WorkspaceTarget) Result {
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
	e.showWorkspace(ws)
	e.relayout()
	return okResult
}

// WorkspaceName switches to the named workspace, creating it if
// needed. Internal names are rejected. Switching to the workspace that
// is already focused is a benign non-success, unless auto
// back-and-forth bounces to the previous workspace instead.
func (e *Engine) WorkspaceName(name string) Result {
	if tree.IsInternalName(name) {
		return failf("cannot switch to internal workspaces")
	}

	if cur := e.tree.CurrentWorkspace(); cur != nil && cur.Name == name {
		if e.autoBackAndForth {
			return e.WorkspaceBackAndForth()
		}
		return failf("workspace %s is already focused", name)
	}

	ws := e.tree.GetWorkspace(name)
	e.showWorkspace(ws)
	e.relayout()
	return okResult
}

// WorkspaceBackAndForth switches to the previously visible workspace.
func (e *Engine) WorkspaceBackAndForth() Result {
	last := e.tree.LastWorkspace()
	if last == "" {
		return failf("no previous workspace to switch back to")
	}
	ws := e.tree.GetWorkspace(last)
	e.showWorkspace(ws)
	e.relayout()
	return okResult
}
