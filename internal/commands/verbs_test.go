package commands

import (
	"strconv"
	"testing"

	"github.com/tilectl/tilectl/internal/tree"
)

func TestBorder_ToggleAdvancesPerCandidate(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	b := openWindow(e, "term", "two")
	a.Border = tree.BorderNormal
	b.Border = tree.BorderNone

	res := e.Dispatch("border", crit(t, "class", "term"), "toggle")
	if !res.Success {
		t.Fatalf("border toggle failed: %s", res.Error)
	}
	// Each candidate advances from its own current style.
	if a.Border != tree.BorderNone {
		t.Errorf("a border %s, want none", a.Border)
	}
	if b.Border != tree.Border1Pixel {
		t.Errorf("b border %s, want 1pixel", b.Border)
	}
}

func TestBorder_InvalidStyleFailsUpfront(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	a.Border = tree.BorderNormal

	if res := e.Dispatch("border", crit(t, "class", "term"), "dashed"); res.Success {
		t.Fatal("invalid border style must fail")
	}
	if a.Border != tree.BorderNormal {
		t.Errorf("no candidate may change on a failed command")
	}
}

func TestBorder_SetExplicitStyle(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")

	if res := e.Dispatch("border", nil, "1pixel"); !res.Success {
		t.Fatalf("border failed: %s", res.Error)
	}
	if a.Border != tree.Border1Pixel {
		t.Errorf("border %s, want 1pixel", a.Border)
	}
}

func TestMark_UniqueTreeWide(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	b := openWindow(e, "browser", "two")

	if res := e.Dispatch("mark", crit(t, "class", "term"), "target"); !res.Success {
		t.Fatalf("mark failed: %s", res.Error)
	}
	if a.Mark != "target" {
		t.Fatalf("a mark %q, want target", a.Mark)
	}

	if res := e.Dispatch("mark", crit(t, "class", "browser"), "target"); !res.Success {
		t.Fatalf("mark failed: %s", res.Error)
	}
	if a.Mark == "target" {
		t.Errorf("the mark must move off a")
	}
	if b.Mark != "target" {
		t.Errorf("b mark %q, want target", b.Mark)
	}
}

func TestKill_FocusedWorkspaceRefused(t *testing.T) {
	e := newEngine(t)
	// Focus sits on the workspace of a fresh tree.
	if res := e.Dispatch("kill", nil); res.Success {
		t.Error("killing a focused workspace must fail")
	}
}

func TestKill_Focused(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	b := openWindow(e, "term", "two")
	e.tree.SetFocused(b)

	if res := e.Dispatch("kill", nil); !res.Success {
		t.Fatalf("kill failed: %s", res.Error)
	}
	if e.tree.ByID(b.ID) != nil {
		t.Errorf("b should be gone")
	}
	if e.tree.Focused() != a {
		t.Errorf("focus should fall back to a")
	}
}

func TestKill_CriteriaContinuesPastFailures(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	b := openWindow(e, "term", "two")
	content := e.tree.Outputs[0].Content()

	// The criteria match both windows plus an unclosable structural
	// container; the failures must not stop the remaining closures.
	c := crit(t, "class", "term")
	if err := c.AddFilter("con_id", strconv.Itoa(content.ID)); err != nil {
		t.Fatal(err)
	}
	res := e.Dispatch("kill", c)
	if !res.Success {
		t.Fatalf("kill failed: %s", res.Error)
	}
	// con_id takes precedence, so only the structural container matched;
	// it cannot be closed but the command still reports success.
	if e.tree.Outputs[0].Content() == nil {
		t.Fatal("the content container must survive")
	}

	// Now kill both windows by class.
	if res := e.Dispatch("kill", crit(t, "class", "term")); !res.Success {
		t.Fatalf("kill failed: %s", res.Error)
	}
	if e.tree.ByID(a.ID) != nil || e.tree.ByID(b.ID) != nil {
		t.Errorf("both windows should be gone")
	}
}

func TestLayout_EmptyCriteriaTargetsParent(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")
	ws := a.Workspace()

	if res := e.Dispatch("layout", nil, "tabbed"); !res.Success {
		t.Fatalf("layout failed: %s", res.Error)
	}
	if ws.Layout != tree.LayoutTabbed {
		t.Errorf("workspace layout %s, want tabbed", ws.Layout)
	}
}

func TestLayout_StackingSynonym(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")

	if res := e.Dispatch("layout", crit(t, "class", "term"), "stacking"); !res.Success {
		t.Fatalf("layout failed: %s", res.Error)
	}
	if a.Layout != tree.LayoutStacked {
		t.Errorf("layout %s, want stacked", a.Layout)
	}
}

func TestFullscreen_Toggle(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")

	if res := e.Dispatch("fullscreen", nil); !res.Success {
		t.Fatalf("fullscreen failed: %s", res.Error)
	}
	if a.Fullscreen != tree.FullscreenOutput {
		t.Fatalf("fullscreen %s, want output", a.Fullscreen)
	}

	// A second toggle leaves fullscreen regardless of mode argument.
	if res := e.Dispatch("fullscreen", nil, "global"); !res.Success {
		t.Fatalf("fullscreen failed: %s", res.Error)
	}
	if a.Fullscreen != tree.FullscreenNone {
		t.Errorf("fullscreen %s, want none", a.Fullscreen)
	}
}

func TestFullscreen_WorkspaceSkipped(t *testing.T) {
	e := newEngine(t)
	ws := e.tree.CurrentWorkspace()

	if res := e.Dispatch("fullscreen", nil); !res.Success {
		t.Fatalf("expected benign success: %s", res.Error)
	}
	if ws.Fullscreen != tree.FullscreenNone {
		t.Errorf("workspaces must never enter fullscreen")
	}
}

func TestFloating_ToggleRoundTrip(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")

	if res := e.Dispatch("floating", nil, "toggle"); !res.Success {
		t.Fatalf("floating failed: %s", res.Error)
	}
	if !a.IsFloating() {
		t.Fatalf("a should float")
	}
	if res := e.Dispatch("floating", nil, "toggle"); !res.Success {
		t.Fatalf("floating failed: %s", res.Error)
	}
	if a.IsFloating() {
		t.Errorf("a should tile again")
	}
}

func TestSplit_Vertical(t *testing.T) {
	e := newEngine(t)
	a := openWindow(e, "term", "one")

	if res := e.Dispatch("split", nil, "v"); !res.Success {
		t.Fatalf("split failed: %s", res.Error)
	}
	if a.Parent.Type != tree.TypeCon || a.Parent.Orientation != tree.Vertical {
		t.Errorf("expected a wrapped in a vertical split, parent %s/%s",
			a.Parent.Type, a.Parent.Orientation)
	}
}

func TestOpen_ReportsNewID(t *testing.T) {
	e := newEngine(t)

	res := e.Dispatch("open", nil)
	if !res.Success {
		t.Fatalf("open failed: %s", res.Error)
	}
	if res.ID == 0 {
		t.Fatal("open must report the new container id")
	}
	con := e.tree.ByID(res.ID)
	if con == nil {
		t.Fatal("reported id not found in the tree")
	}
	if e.tree.Focused() != con {
		t.Errorf("the new container should take focus")
	}
}

func TestNop(t *testing.T) {
	e := newEngine(t)
	if res := e.Dispatch("nop", nil, "just testing"); !res.Success {
		t.Errorf("nop must always succeed: %s", res.Error)
	}
	if res := e.Dispatch("nop", nil); !res.Success {
		t.Errorf("nop without comment must succeed: %s", res.Error)
	}
}
