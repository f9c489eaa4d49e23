package commands

import (
	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/tree"
)

// Border sets or cycles the border style of every candidate. toggle
// advances each candidate from its own current style.
func (e *Engine) Border(crit *criteria.Criteria, style string) Result {
	toggle := style == "toggle"
	var target tree.BorderStyle
	if !toggle {
		switch tree.BorderStyle(style) {
		case tree.BorderNormal, tree.BorderNone, tree.Border1Pixel:
			target = tree.BorderStyle(style)
		default:
			return failf("invalid border style: %s", style)
		}
	}

	for _, con := range e.candidates(crit) {
		if toggle {
			con.Border = tree.NextBorderStyle(con.Border)
		} else {
			con.Border = target
		}
	}

	e.relayout()
	return okResult
}

// Split inserts an orientation boundary above the focused container.
// The direction's first character selects vertical vs horizontal.
func (e *Engine) Split(crit *criteria.Criteria, direction string) Result {
	o := tree.Horizontal
	if direction[0] == 'v' {
		o = tree.Vertical
	}
	e.tree.Split(e.tree.Focused(), o)
	e.relayout()
	return okResult
}

// Kill closes the focused container (empty criteria) or every
// candidate. Failures on individual candidates are logged and do not
// abort the remaining closures.
func (e *Engine) Kill(crit *criteria.Criteria, mode KillMode) Result {
	e.log.Debug().Str("mode", string(mode)).Msg("killing containers")

	if crit.IsEmpty() {
		focused := e.tree.Focused()
		if focused.Type == tree.TypeWorkspace {
			return failf("the focused container is a workspace and cannot be killed")
		}
		if err := e.tree.Close(focused); err != nil {
			return failf("%v", err)
		}
		e.relayout()
		return okResult
	}

	for _, con := range criteria.Resolve(e.tree, crit) {
		if err := e.tree.Close(con); err != nil {
			e.log.Warn().Err(err).Int("con", con.ID).Msg("could not close container")
		}
	}
	e.relayout()
	return okResult
}

// Layout changes the layout of the focused container's parent (empty
// criteria) or of each candidate directly.
func (e *Engine) Layout(crit *criteria.Criteria, layout tree.Layout) Result {
	if crit.IsEmpty() {
		parent := e.tree.Focused().Parent
		if parent == nil {
			return failf("the focused container has no parent to set a layout on")
		}
		parent.Layout = layout
	} else {
		for _, con := range criteria.Resolve(e.tree, crit) {
			con.Layout = layout
		}
	}

	e.relayout()
	return okResult
}

// Mark assigns a mark to every candidate. Marks are unique tree-wide:
// the value is cleared from all other containers first.
func (e *Engine) Mark(crit *criteria.Criteria, mark string) Result {
	e.tree.ClearMark(mark)
	for _, con := range e.candidates(crit) {
		con.Mark = mark
	}
	e.relayout()
	return okResult
}

// Fullscreen toggles fullscreen on every candidate: a container
// already fullscreen (in any mode) leaves fullscreen, otherwise it
// enters the given mode.
func (e *Engine) Fullscreen(crit *criteria.Criteria, mode tree.FullscreenMode) Result {
	for _, con := range e.candidates(crit) {
		if con.Type == tree.TypeWorkspace {
			e.log.Warn().Int("con", con.ID).Msg("workspaces cannot be fullscreen")
			continue
		}
		if con.Fullscreen != tree.FullscreenNone {
			con.Fullscreen = tree.FullscreenNone
		} else {
			con.Fullscreen = mode
		}
	}
	e.relayout()
	return okResult
}

// Floating switches candidates between the floating and tiling
// placement regimes.
func (e *Engine) Floating(crit *criteria.Criteria, mode FloatingMode) Result {
	for _, con := range e.candidates(crit) {
		if con.Type == tree.TypeWorkspace {
			e.log.Warn().Int("con", con.ID).Msg("workspaces cannot float")
			continue
		}
		switch mode {
		case FloatingEnable:
			e.tree.FloatingEnable(con)
		case FloatingDisable:
			e.tree.FloatingDisable(con)
		default:
			if con.IsFloating() {
				e.tree.FloatingDisable(con)
			} else {
				e.tree.FloatingEnable(con)
			}
		}
	}
	e.relayout()
	return okResult
}

// Open creates a new empty container next to the focused one and
// focuses it. The reply carries the new container's id.
func (e *Engine) Open() Result {
	con := e.tree.OpenCon("")
	e.relayout()
	return Result{Success: true, ID: con.ID}
}

// Nop logs its comment and succeeds without touching the tree.
func (e *Engine) Nop(comment string) Result {
	e.log.Info().Str("comment", comment).Msg("nop")
	return okResult
}
