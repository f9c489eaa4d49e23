package tree

import "strings"

// InternalPrefix marks workspaces owned by the engine itself (the
// scratchpad). Users cannot switch or move containers to them.
const InternalPrefix = "__tilectl_"

// IsInternalName reports whether name carries the reserved prefix.
func IsInternalName(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), InternalPrefix)
}

// Workspaces returns all non-internal workspaces in tree order (output
// order, then workspace order within each output).
func (t *Tree) Workspaces() []*Con {
	var out []*Con
	for _, o := range t.Outputs {
		content := o.Content()
		if content == nil {
			continue
		}
		for _, ws := range content.Children {
			if ws.Type == TypeWorkspace && !IsInternalName(ws.Name) {
				out = append(out, ws)
			}
		}
	}
	return out
}

// CurrentWorkspace returns the workspace holding global focus. Falls
// back to the first output's visible workspace when focus sits outside
// any workspace.
func (t *Tree) CurrentWorkspace() *Con {
	if ws := t.Focused().Workspace(); ws != nil {
		return ws
	}
	if len(t.Outputs) > 0 {
		return t.Outputs[0].VisibleWorkspace()
	}
	return nil
}

// WorkspaceByName finds a workspace (internal ones included), or nil.
func (t *Tree) WorkspaceByName(name string) *Con {
	for _, o := range t.Outputs {
		content := o.Content()
		if content == nil {
			continue
		}
		for _, ws := range content.Children {
			if ws.Type == TypeWorkspace && ws.Name == name {
				return ws
			}
		}
	}
	return nil
}

// GetWorkspace looks the named workspace up, creating it on the current
// output when missing. Callers must reject internal-prefixed names
// before any candidate will actually move (see the command engine).
func (t *Tree) GetWorkspace(name string) *Con {
	if ws := t.WorkspaceByName(name); ws != nil {
		return ws
	}
	ws := t.NewCon(TypeWorkspace, name)
	out := t.OutputForCon(t.Focused())
	ws.Attach(out.Content())
	return ws
}

// IsWorkspaceVisible reports whether ws is the workspace shown on its
// output.
func (t *Tree) IsWorkspaceVisible(ws *Con) bool {
	out := t.OutputForCon(ws)
	return out != nil && out.VisibleWorkspace() == ws
}

// ShowWorkspace makes ws the visible workspace on its output by
// focusing whatever is topmost in ws's focus order. Callers that need a
// specific container focused must prime ws's focus order first (see the
// focus command).
func (t *Tree) ShowWorkspace(ws *Con) {
	prev := t.CurrentWorkspace()
	if prev != nil && prev != ws && !IsInternalName(prev.Name) {
		t.lastWorkspace = prev.Name
	}
	t.SetFocused(ws.DescendFocused())
}

// LastWorkspace returns the name of the previously visible workspace,
// for back-and-forth switching.
func (t *Tree) LastWorkspace() string {
	return t.lastWorkspace
}

// NextWorkspace returns the workspace after the current one in global
// tree order, wrapping cyclically.
func (t *Tree) NextWorkspace() *Con {
	return t.stepWorkspace(t.Workspaces(), 1)
}

// PrevWorkspace returns the workspace before the current one, wrapping.
func (t *Tree) PrevWorkspace() *Con {
	return t.stepWorkspace(t.Workspaces(), -1)
}

// NextWorkspaceOnOutput cycles among the current output's workspaces.
func (t *Tree) NextWorkspaceOnOutput() *Con {
	return t.stepWorkspace(t.workspacesOnCurrentOutput(), 1)
}

// PrevWorkspaceOnOutput cycles backwards among the current output's
// workspaces.
func (t *Tree) PrevWorkspaceOnOutput() *Con {
	return t.stepWorkspace(t.workspacesOnCurrentOutput(), -1)
}

func (t *Tree) workspacesOnCurrentOutput() []*Con {
	cur := t.CurrentWorkspace()
	if cur == nil {
		return nil
	}
	out := t.OutputForCon(cur)
	var list []*Con
	for _, ws := range t.Workspaces() {
		if t.OutputForCon(ws) == out {
			list = append(list, ws)
		}
	}
	return list
}

func (t *Tree) stepWorkspace(list []*Con, delta int) *Con {
	if len(list) == 0 {
		return nil
	}
	cur := t.CurrentWorkspace()
	idx := 0
	for i, ws := range list {
		if ws == cur {
			idx = i
			break
		}
	}
	return list[((idx+delta)%len(list)+len(list))%len(list)]
}

// WorkspaceInfo is one workspace in a listing reply.
type WorkspaceInfo struct {
	Name    string `yaml:"name"    json:"name"`
	Output  string `yaml:"output"  json:"output"`
	Visible bool   `yaml:"visible" json:"visible"`
	Focused bool   `yaml:"focused" json:"focused"`
}

// WorkspaceInfos lists all non-internal workspaces with their output,
// visibility, and focus state.
func WorkspaceInfos(t *Tree) []WorkspaceInfo {
	current := t.CurrentWorkspace()
	var infos []WorkspaceInfo
	for _, ws := range t.Workspaces() {
		info := WorkspaceInfo{
			Name:    ws.Name,
			Visible: t.IsWorkspaceVisible(ws),
			Focused: ws == current,
		}
		if out := t.OutputForCon(ws); out != nil {
			info.Output = out.Name
		}
		infos = append(infos, info)
	}
	return infos
}

// MoveConToWorkspace detaches con from its workspace subtree and
// attaches it under ws, preserving whether it was floating. Moving a
// container onto its own workspace is a no-op.
func (t *Tree) MoveConToWorkspace(con, ws *Con) {
	if con == ws || con.Type == TypeWorkspace || con.Workspace() == ws {
		return
	}
	subject := con
	if w := con.FloatingWrapper(); w != nil {
		subject = w
	}
	oldParent := subject.Parent
	subject.Detach()
	if oldParent != nil {
		oldParent.FixPercent()
	}
	subject.Percent = 0
	subject.Attach(ws)
	ws.FixPercent()
}
