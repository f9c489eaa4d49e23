package tree

import (
	"testing"
)

func TestIsInternalName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"1", false},
		{"mail", false},
		{"__tilectl_scratch", true},
		{"__TILECTL_anything", true},
		{"x__tilectl_", false},
	}
	for _, tt := range tests {
		if got := IsInternalName(tt.name); got != tt.want {
			t.Errorf("IsInternalName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGetWorkspace_CreatesOnCurrentOutput(t *testing.T) {
	tr := New()

	ws := tr.GetWorkspace("mail")
	if ws == nil || ws.Name != "mail" {
		t.Fatalf("expected workspace mail, got %+v", ws)
	}
	if ws.Parent != tr.Outputs[0].Content() {
		t.Errorf("workspace should attach to the current output's content")
	}
	if again := tr.GetWorkspace("mail"); again != ws {
		t.Errorf("GetWorkspace must not duplicate an existing workspace")
	}
}

func TestWorkspaces_ExcludesInternal(t *testing.T) {
	tr := New()
	tr.GetWorkspace("mail")
	tr.Scratchpad()

	names := make([]string, 0)
	for _, ws := range tr.Workspaces() {
		names = append(names, ws.Name)
	}
	if len(names) != 2 || names[0] != "1" || names[1] != "mail" {
		t.Errorf("expected [1 mail], got %v", names)
	}
}

func TestShowWorkspace_RecordsPrevious(t *testing.T) {
	tr := New()
	two := tr.GetWorkspace("2")

	tr.ShowWorkspace(two)
	if tr.CurrentWorkspace() != two {
		t.Fatalf("expected workspace 2 current")
	}
	if tr.LastWorkspace() != "1" {
		t.Errorf("expected last workspace 1, got %q", tr.LastWorkspace())
	}
	if !tr.IsWorkspaceVisible(two) {
		t.Errorf("shown workspace should be visible")
	}
}

func TestNextPrevWorkspace_Cycles(t *testing.T) {
	tr := New()
	tr.GetWorkspace("2")
	tr.GetWorkspace("3")

	// Current is 1; next walks 2, 3, then wraps to 1.
	if ws := tr.NextWorkspace(); ws.Name != "2" {
		t.Errorf("next from 1 = %q, want 2", ws.Name)
	}
	if ws := tr.PrevWorkspace(); ws.Name != "3" {
		t.Errorf("prev from 1 should wrap to 3, got %q", ws.Name)
	}

	tr.ShowWorkspace(tr.GetWorkspace("3"))
	if ws := tr.NextWorkspace(); ws.Name != "1" {
		t.Errorf("next from 3 should wrap to 1, got %q", ws.Name)
	}
}

func TestMoveConToWorkspace(t *testing.T) {
	tr := New()
	one := tr.CurrentWorkspace()
	a := tr.OpenCon("a")
	b := tr.OpenCon("b")
	two := tr.GetWorkspace("2")

	tr.MoveConToWorkspace(a, two)
	if a.Parent != two {
		t.Fatalf("expected a on workspace 2")
	}
	if b.Percent < 0.999 || b.Percent > 1.001 {
		t.Errorf("b should own the old workspace, got %f", b.Percent)
	}
	if a.Percent < 0.999 || a.Percent > 1.001 {
		t.Errorf("a should own the new workspace, got %f", a.Percent)
	}

	// No-ops: moving onto the own workspace, moving a workspace.
	tr.MoveConToWorkspace(b, one)
	if b.Parent != one {
		t.Errorf("move onto own workspace must be a no-op")
	}
	tr.MoveConToWorkspace(one, two)
	if one.Parent == two {
		t.Errorf("a workspace must never move into another workspace")
	}
}

func TestMoveConToWorkspace_KeepsFloating(t *testing.T) {
	tr := New()
	a := tr.OpenCon("a")
	wrapper := tr.FloatingEnable(a)
	two := tr.GetWorkspace("2")

	tr.MoveConToWorkspace(a, two)
	if wrapper.Parent != two {
		t.Errorf("the floating wrapper should move, not the inner container")
	}
	if a.Parent != wrapper {
		t.Errorf("a must stay inside its wrapper")
	}
}

func TestWorkspaceInfos(t *testing.T) {
	tr := New()
	tr.GetWorkspace("2")
	tr.Scratchpad()

	infos := WorkspaceInfos(tr)
	if len(infos) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(infos))
	}
	if !infos[0].Visible || !infos[0].Focused {
		t.Errorf("workspace 1 should be visible and focused: %+v", infos[0])
	}
	if infos[1].Visible || infos[1].Focused {
		t.Errorf("workspace 2 should be hidden and unfocused: %+v", infos[1])
	}
	if infos[0].Output != "default" {
		t.Errorf("expected output default, got %q", infos[0].Output)
	}
}
