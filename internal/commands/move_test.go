package commands

import (
	"testing"

	"github.com/tilectl/tilectl/internal/tree"
)

func TestMoveToWorkspaceName_CreatesAndMoves(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "shell")

	res := e.Dispatch("move_to_workspace_name", nil, "mail")
	if !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if a.Workspace() == nil || a.Workspace().Name != "mail" {
		t.Errorf("expected a on workspace mail, got %v", a.Workspace())
	}
}

func TestMoveToWorkspaceName_RejectsInternalWithoutCreating(t *testing.T) {
	e := newEngine(t)
	openWindow(e, "term", "shell")

	res := e.Dispatch("move_to_workspace_name", nil, "__tilectl_hidden")
	if res.Success {
		t.Fatal("moving to an internal workspace must fail")
	}
	if e.tree.WorkspaceByName("__tilectl_hidden") != nil {
		t.Error("the rejected workspace must not be created")
	}
}

func TestMoveToWorkspaceName_FocusedWorkspaceFailsBeforeCreate(t *testing.T) {
	e := newEngine(t)
	// Nothing opened: the focused container is the workspace itself.

	res := e.Dispatch("move_to_workspace_name", nil, "elsewhere")
	if res.Success {
		t.Fatal("moving a focused workspace must fail")
	}
	if e.tree.WorkspaceByName("elsewhere") != nil {
		t.Error("the target workspace must not be created when nothing moves")
	}
}

func TestMoveToWorkspace_Relative(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "shell")
	e.tree.GetWorkspace("2")
	e.tree.SetFocused(a)

	res := e.Dispatch("move_to_workspace", nil, "next")
	if !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if a.Workspace().Name != "2" {
		t.Errorf("expected a on workspace 2, got %q", a.Workspace().Name)
	}
}

func TestMoveDirection_TilingSwap(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "a", "")
	b := openWindow(e, "b", "")
	ws := a.Workspace()
	e.tree.SetFocused(a)

	if res := e.Dispatch("move_direction", nil, "right", "10"); !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if ws.Children[0] != b || ws.Children[1] != a {
		t.Errorf("expected [b a], got [%s %s]", ws.Children[0].Name, ws.Children[1].Name)
	}
}

func TestMoveDirection_FloatingTranslatesOnly(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "a", "")
	wrapper := e.tree.FloatingEnable(a)
	wrapper.Rect = tree.Rect{X: 100, Y: 100, Width: 640, Height: 480}

	if res := e.Dispatch("move_direction", nil, "right", "30"); !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if wrapper.Rect.X != 130 || wrapper.Rect.Y != 100 {
		t.Errorf("origin (%d,%d), want (130,100)", wrapper.Rect.X, wrapper.Rect.Y)
	}
	if wrapper.Rect.Width != 640 || wrapper.Rect.Height != 480 {
		t.Errorf("floating move must not change dimensions, got %dx%d",
			wrapper.Rect.Width, wrapper.Rect.Height)
	}

	if res := e.Dispatch("move_direction", nil, "up", "50"); !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if wrapper.Rect.Y != 50 {
		t.Errorf("y = %d, want 50", wrapper.Rect.Y)
	}
}

func TestMoveToOutput(t *testing.T) {
	e := twoOutputEngine(t)
	a := openWindow(e, "term", "shell")

	res := e.Dispatch("move_to_output", nil, "right")
	if !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if a.Workspace().Name != "2" {
		t.Errorf("expected a on the secondary output's workspace, got %q", a.Workspace().Name)
	}
}

func TestMoveWorkspaceToOutput_SoleWorkspaceSkipped(t *testing.T) {
	e := twoOutputEngine(t)
	openWindow(e, "term", "shell")
	ws := e.tree.CurrentWorkspace()
	oldContent := ws.Parent

	// Workspace 1 is the only workspace on the primary output: the move
	// is skipped, not failed.
	res := e.Dispatch("move_workspace_to_output", nil, "right")
	if !res.Success {
		t.Fatalf("expected benign success: %s", res.Error)
	}
	if ws.Parent != oldContent {
		t.Error("a sole workspace must stay on its output")
	}
}

func TestMoveWorkspaceToOutput_MovesAndFollowsFocus(t *testing.T) {
	e := twoOutputEngine(t)
	openWindow(e, "term", "shell")
	ws := e.tree.CurrentWorkspace()
	e.tree.GetWorkspace("extra") // second workspace on the primary output

	var events []string
	e.notify = func(event, change string) { events = append(events, event+":"+change) }

	res := e.Dispatch("move_workspace_to_output", nil, "right")
	if !res.Success {
		t.Fatalf("move failed: %s", res.Error)
	}
	if e.tree.OutputForCon(ws).Name != "secondary" {
		t.Errorf("workspace should now live on secondary, got %q", e.tree.OutputForCon(ws).Name)
	}
	// The old output shows the remaining workspace; focus follows the
	// moved one.
	if e.tree.Outputs[0].VisibleWorkspace().Name != "extra" {
		t.Errorf("primary should show extra, got %q", e.tree.Outputs[0].VisibleWorkspace().Name)
	}
	if e.tree.CurrentWorkspace() != ws {
		t.Errorf("focus should follow the moved workspace")
	}
	found := false
	for _, ev := range events {
		if ev == "workspace:move" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a workspace:move event, got %v", events)
	}
}

func TestScratchpadFlow(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "shell")
	openWindow(e, "browser", "docs")
	e.tree.SetFocused(a)

	if res := e.Dispatch("move_scratchpad", nil); !res.Success {
		t.Fatalf("move_scratchpad failed: %s", res.Error)
	}
	if a.Workspace() == nil || a.Workspace().Name != tree.ScratchpadName {
		t.Fatalf("a should be in the scratchpad, got %v", a.Workspace())
	}
	if !a.IsFloating() {
		t.Errorf("scratchpad containers are always floating")
	}

	if res := e.Dispatch("scratchpad_show", nil); !res.Success {
		t.Fatalf("scratchpad_show failed: %s", res.Error)
	}
	if a.Workspace().Name != "1" {
		t.Errorf("a should be back on workspace 1, got %q", a.Workspace().Name)
	}
	if e.tree.Focused() != a {
		t.Errorf("the shown container should take focus")
	}
}

func TestScratchpadShow_EmptyFails(t *testing.T) {
	e := newEngine(t)
	if res := e.Dispatch("scratchpad_show", nil); res.Success {
		t.Error("showing an empty scratchpad must fail")
	}
}

func TestScratchpadShow_CriteriaMiss(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "shell")
	e.tree.SetFocused(a)
	e.Dispatch("move_scratchpad", nil)

	if res := e.Dispatch("scratchpad_show", crit(t, "class", "browser")); res.Success {
		t.Error("criteria matching nothing in the scratchpad must fail")
	}
}
