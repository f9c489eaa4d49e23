package commands

import (
	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/tree"
)

// fullscreenGuard blocks focus changes while a non-workspace container
// is fullscreen.
func (e *Engine) fullscreenGuard() *Result {
	focused := e.tree.Focused()
	if focused != nil && focused.Type != tree.TypeWorkspace &&
		focused.Fullscreen != tree.FullscreenNone {
		r := failf("cannot change focus while in fullscreen mode")
		return &r
	}
	return nil
}

// Focus focuses the containers matched by the criteria. It requires
// explicit criteria: defaulting to the focused container would make it
// a no-op.
//
// Candidates on a different workspace need careful sequencing: showing
// the workspace warps visible focus to the top of that workspace's
// focus order, so the candidate is focused first (priming the order),
// focus is restored, the workspace is shown, and the candidate is
// focused again to finalize.
func (e *Engine) Focus(crit *criteria.Criteria) Result {
	if r := e.fullscreenGuard(); r != nil {
		return *r
	}
	if crit.IsEmpty() {
		return failf("you have to specify which container should be focused, " +
			"for example: tilectl focus --class urxvt --title irssi")
	}

	count := 0
	for _, con := range criteria.Resolve(e.tree, crit) {
		ws := con.Workspace()
		if ws == nil {
			// Dock containers have no owning workspace and cannot be
			// focused.
			continue
		}

		currentlyFocused := e.tree.Focused()
		e.tree.SetFocused(con)
		e.tree.SetFocused(currentlyFocused)

		e.showWorkspace(ws)
		e.tree.SetFocused(con)
		count++
	}

	if count > 1 {
		e.log.Warn().Int("matched", count).
			Msg("criteria for focus matched several containers, only one can be focused")
	}

	e.relayout()
	return okResult
}

// FocusDirection moves focus to the neighboring container in the given
// direction.
func (e *Engine) FocusDirection(dir tree.Direction) Result {
	if r := e.fullscreenGuard(); r != nil {
		return *r
	}
	if err := e.tree.FocusDirection(dir.IsPrev(), dir.Orientation()); err != nil {
		return failf("%v", err)
	}
	e.relayout()
	return okResult
}

// FocusWindowMode switches focus between the floating and tiling
// regimes of the current workspace. mode_toggle inspects the most
// recently focused child to decide which way to switch.
func (e *Engine) FocusWindowMode(mode WindowMode) Result {
	if r := e.fullscreenGuard(); r != nil {
		return *r
	}
	ws := e.tree.CurrentWorkspace()
	if ws == nil {
		return failf("no workspace is focused")
	}

	if mode == WindowModeToggle {
		mode = WindowModeFloating
		if len(ws.FocusOrder) > 0 && ws.FocusOrder[0].Type == tree.TypeFloating {
			mode = WindowModeTiling
		}
	}

	for _, child := range ws.FocusOrder {
		floating := child.Type == tree.TypeFloating
		if (mode == WindowModeFloating && !floating) ||
			(mode == WindowModeTiling && floating) {
			continue
		}
		e.tree.SetFocused(child.DescendFocused())
		break
	}

	e.relayout()
	return okResult
}

// FocusLevel moves focus one level up (parent) or down (child) the
// tree.
func (e *Engine) FocusLevel(parent bool) Result {
	if r := e.fullscreenGuard(); r != nil {
		return *r
	}
	focused := e.tree.Focused()
	if parent {
		if focused.Type == tree.TypeWorkspace || focused.Parent == nil {
			return failf("already at the top of the workspace tree")
		}
		e.tree.SetFocused(focused.Parent)
	} else {
		if len(focused.FocusOrder) == 0 {
			return failf("there is no child container to focus")
		}
		e.tree.SetFocused(focused.FocusOrder[0])
	}
	e.relayout()
	return okResult
}

// FocusOutput shows the visible workspace of the output resolved from
// name (a direction keyword with wraparound, or an explicit name).
func (e *Engine) FocusOutput(crit *criteria.Criteria, name string) Result {
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
	e.showWorkspace(ws)
	e.relayout()
	return okResult
}

// outputForCandidate derives a candidate's output, preferring its
// geometry and falling back to its position in the tree.
func (e *Engine) outputForCandidate(con *tree.Con) *tree.Output {
	if con.Rect.Width > 0 && con.Rect.Height > 0 {
		cx, cy := con.Rect.Center()
		for _, o := range e.tree.Outputs {
			if o.Rect.Contains(cx, cy) {
				return o
			}
		}
	}
	return e.tree.OutputForCon(con)
}

// showWorkspace switches the visible workspace and fires the
// workspace-changed event.
func (e *Engine) showWorkspace(ws *tree.Con) {
	if e.tree.CurrentWorkspace() == ws {
		return
	}
	e.tree.ShowWorkspace(ws)
	e.notify("workspace", "focus")
}
