package tree

// ScratchpadName is the hidden internal workspace holding scratchpad
// containers.
const ScratchpadName = InternalPrefix + "scratch"

// Scratchpad returns the scratchpad workspace, creating it on the first
// output when missing. It is internal: never listed, never visible.
func (t *Tree) Scratchpad() *Con {
	if ws := t.WorkspaceByName(ScratchpadName); ws != nil {
		return ws
	}
	ws := t.NewCon(TypeWorkspace, ScratchpadName)
	ws.Attach(t.Outputs[0].Content())
	// Keep it out of the visible rotation: move it to the back of the
	// content focus order.
	content := t.Outputs[0].Content()
	content.FocusOrder = append(removeCon(content.FocusOrder, ws), ws)
	return ws
}

// MoveToScratchpad floats con (if it is not already floating) and
// relocates it into the hidden scratchpad workspace.
func (t *Tree) MoveToScratchpad(con *Con) {
	if con.Type == TypeWorkspace {
		return
	}
	wrapper := con.FloatingWrapper()
	if wrapper == nil {
		wrapper = t.FloatingEnable(con)
	}
	scratch := t.Scratchpad()
	oldWs := wrapper.Workspace()
	oldParent := wrapper.Parent
	wrapper.Detach()
	if oldParent != nil {
		oldParent.FixPercent()
	}
	wrapper.Attach(scratch)
	// Focus must not follow into the hidden workspace.
	if oldWs != nil && t.Focused().Workspace() == scratch {
		t.SetFocused(oldWs.DescendFocused())
	}
}

// ScratchpadShow reveals con on the current workspace. With a nil con
// it picks the most recently used scratchpad container. Returns the
// shown container, or nil when the scratchpad is empty.
func (t *Tree) ScratchpadShow(con *Con) *Con {
	scratch := t.Scratchpad()
	if con == nil {
		if len(scratch.FocusOrder) == 0 {
			return nil
		}
		con = scratch.FocusOrder[0]
	}
	wrapper := con.FloatingWrapper()
	if wrapper == nil {
		wrapper = con
	}
	if wrapper.Workspace() != scratch {
		return nil
	}
	ws := t.CurrentWorkspace()
	wrapper.Detach()
	wrapper.Attach(ws)

	// Center the floating wrapper on its new output.
	out := t.OutputForCon(ws)
	if out != nil {
		cx, cy := out.Rect.Center()
		wrapper.Rect.X = cx - wrapper.Rect.Width/2
		wrapper.Rect.Y = cy - wrapper.Rect.Height/2
	}
	t.SetFocused(wrapper.DescendFocused())
	return wrapper
}

// FloatingEnable wraps con in a floating wrapper attached to its
// workspace and returns the wrapper. No-op (returns the existing
// wrapper) when con already floats.
func (t *Tree) FloatingEnable(con *Con) *Con {
	if w := con.FloatingWrapper(); w != nil {
		return w
	}
	if con.Type == TypeWorkspace {
		return nil
	}
	ws := con.Workspace()
	if ws == nil {
		return nil
	}
	hadFocus := t.Focused() == con
	oldParent := con.Parent
	wrapper := t.NewCon(TypeFloating, "")
	wrapper.Rect = con.Rect
	if wrapper.Rect.Width == 0 || wrapper.Rect.Height == 0 {
		wrapper.Rect.Width, wrapper.Rect.Height = 640, 480
	}
	con.Detach()
	if oldParent != nil {
		oldParent.FixPercent()
	}
	wrapper.Attach(ws)
	con.Percent = 1.0
	con.Attach(wrapper)
	if hadFocus {
		t.SetFocused(con)
	}
	return wrapper
}

// FloatingDisable unwraps con from its floating wrapper and re-attaches
// it to the workspace as a tiling container.
func (t *Tree) FloatingDisable(con *Con) {
	wrapper := con.FloatingWrapper()
	if wrapper == nil {
		return
	}
	ws := wrapper.Workspace()
	inner := con
	if inner == wrapper {
		if len(wrapper.Children) == 0 {
			return
		}
		inner = wrapper.Children[0]
	}
	hadFocus := t.Focused() == inner
	inner.Detach()
	wrapper.Detach()
	inner.Percent = 0
	inner.Attach(ws)
	ws.FixPercent()
	if hadFocus {
		t.SetFocused(inner)
	}
}
