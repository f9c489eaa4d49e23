package tree

import (
	"testing"
)

func TestFloatingEnableDisable(t *testing.T) {
	tr := New()
	ws := tr.CurrentWorkspace()
	a := tr.OpenCon("a")
	b := tr.OpenCon("b")
	tr.SetFocused(a)

	wrapper := tr.FloatingEnable(a)
	if wrapper == nil || wrapper.Type != TypeFloating {
		t.Fatalf("expected a floating wrapper, got %+v", wrapper)
	}
	if wrapper.Parent != ws || a.Parent != wrapper {
		t.Fatalf("wrapper must hang off the workspace with a inside")
	}
	if !a.IsFloating() {
		t.Errorf("a should report floating")
	}
	if tr.Focused() != a {
		t.Errorf("floating must preserve focus")
	}
	if wrapper.Rect.Width == 0 || wrapper.Rect.Height == 0 {
		t.Errorf("wrapper needs a usable default size, got %+v", wrapper.Rect)
	}
	// b is the only tiling child left and owns the full share.
	if b.Percent < 0.999 || b.Percent > 1.001 {
		t.Errorf("b should own the tiling area, got %f", b.Percent)
	}

	// Enabling again returns the same wrapper.
	if again := tr.FloatingEnable(a); again != wrapper {
		t.Errorf("repeated enable must be a no-op")
	}

	tr.FloatingDisable(a)
	if a.Parent != ws {
		t.Errorf("disable should re-attach a to the workspace")
	}
	if a.IsFloating() {
		t.Errorf("a should no longer float")
	}
	if tr.Focused() != a {
		t.Errorf("disable must preserve focus")
	}
}

func TestFloatingEnable_RejectsWorkspace(t *testing.T) {
	tr := New()
	if w := tr.FloatingEnable(tr.CurrentWorkspace()); w != nil {
		t.Errorf("workspaces cannot float, got wrapper %+v", w)
	}
}

func TestScratchpad_StaysHidden(t *testing.T) {
	tr := New()
	scratch := tr.Scratchpad()

	if !IsInternalName(scratch.Name) {
		t.Fatalf("scratchpad must use the internal prefix, got %q", scratch.Name)
	}
	if tr.Outputs[0].VisibleWorkspace() == scratch {
		t.Errorf("creating the scratchpad must not make it visible")
	}
	for _, ws := range tr.Workspaces() {
		if ws == scratch {
			t.Errorf("scratchpad must not appear in workspace listings")
		}
	}
}

func TestMoveToScratchpad_AutoFloats(t *testing.T) {
	tr := New()
	a := tr.OpenCon("a")
	b := tr.OpenCon("b")
	tr.SetFocused(a)

	tr.MoveToScratchpad(a)

	scratch := tr.Scratchpad()
	wrapper := a.FloatingWrapper()
	if wrapper == nil || wrapper.Parent != scratch {
		t.Fatalf("a should sit floating inside the scratchpad")
	}
	// Focus fell back to the old workspace.
	if tr.Focused().Workspace() == scratch {
		t.Errorf("focus must not follow into the scratchpad")
	}
	_ = b
}

func TestScratchpadShow_MostRecentlyUsed(t *testing.T) {
	tr := New()
	a := tr.OpenCon("a")
	b := tr.OpenCon("b")
	tr.MoveToScratchpad(a)
	tr.MoveToScratchpad(b)

	shown := tr.ScratchpadShow(nil)
	if shown == nil {
		t.Fatal("expected a shown container")
	}
	ws := tr.CurrentWorkspace()
	if shown.Workspace() != ws {
		t.Errorf("shown wrapper should sit on the current workspace")
	}
	if tr.Focused().FloatingWrapper() != shown {
		t.Errorf("focus should land inside the shown wrapper")
	}

	// Centered on the output.
	out := tr.Outputs[0]
	cx, cy := out.Rect.Center()
	wantX := cx - shown.Rect.Width/2
	wantY := cy - shown.Rect.Height/2
	if shown.Rect.X != wantX || shown.Rect.Y != wantY {
		t.Errorf("wrapper at (%d,%d), want centered (%d,%d)",
			shown.Rect.X, shown.Rect.Y, wantX, wantY)
	}
}

func TestScratchpadShow_Empty(t *testing.T) {
	tr := New()
	if shown := tr.ScratchpadShow(nil); shown != nil {
		t.Errorf("empty scratchpad should show nothing, got %+v", shown)
	}
}

func TestScratchpadShow_SpecificContainer(t *testing.T) {
	tr := New()
	a := tr.OpenCon("a")
	tr.MoveToScratchpad(a)

	if shown := tr.ScratchpadShow(a); shown != a.FloatingWrapper() {
		t.Errorf("showing a specific container should move its wrapper")
	}

	// A container not in the scratchpad cannot be shown.
	b := tr.OpenCon("b")
	if shown := tr.ScratchpadShow(b); shown != nil {
		t.Errorf("b is not in the scratchpad, got %+v", shown)
	}
}
