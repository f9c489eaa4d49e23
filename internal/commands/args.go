package commands

import "github.com/tilectl/tilectl/internal/tree"

// WorkspaceTarget selects a workspace relative to the current one.
type WorkspaceTarget string

const (
	WorkspaceNext         WorkspaceTarget = "next"
	WorkspacePrev         WorkspaceTarget = "prev"
	WorkspaceNextOnOutput WorkspaceTarget = "next_on_output"
	WorkspacePrevOnOutput WorkspaceTarget = "prev_on_output"
)

func parseWorkspaceTarget(s string) (WorkspaceTarget, bool) {
	switch WorkspaceTarget(s) {
	case WorkspaceNext, WorkspacePrev, WorkspaceNextOnOutput, WorkspacePrevOnOutput:
		return WorkspaceTarget(s), true
	}
	return "", false
}

// ResizeWay is grow or shrink; shrink negates both amounts.
type ResizeWay string

const (
	ResizeGrow   ResizeWay = "grow"
	ResizeShrink ResizeWay = "shrink"
)

func parseResizeWay(s string) (ResizeWay, bool) {
	switch ResizeWay(s) {
	case ResizeGrow, ResizeShrink:
		return ResizeWay(s), true
	}
	return "", false
}

// KillMode selects what a kill closes.
type KillMode string

const (
	KillWindow KillMode = "window"
	KillClient KillMode = "client"
)

func parseKillMode(s string) (KillMode, bool) {
	switch KillMode(s) {
	case KillWindow, KillClient:
		return KillMode(s), true
	}
	return "", false
}

// WindowMode selects which placement regime focus_window_mode targets.
type WindowMode string

const (
	WindowModeFloating WindowMode = "floating"
	WindowModeTiling   WindowMode = "tiling"
	WindowModeToggle   WindowMode = "mode_toggle"
)

func parseWindowMode(s string) (WindowMode, bool) {
	switch WindowMode(s) {
	case WindowModeFloating, WindowModeTiling, WindowModeToggle:
		return WindowMode(s), true
	}
	return "", false
}

// FloatingMode is the argument of the floating verb.
type FloatingMode string

const (
	FloatingEnable  FloatingMode = "enable"
	FloatingDisable FloatingMode = "disable"
	FloatingToggle  FloatingMode = "toggle"
)

func parseFloatingMode(s string) (FloatingMode, bool) {
	switch FloatingMode(s) {
	case FloatingEnable, FloatingDisable, FloatingToggle:
		return FloatingMode(s), true
	}
	return "", false
}

func parseFullscreenMode(s string) (tree.FullscreenMode, bool) {
	switch tree.FullscreenMode(s) {
	case tree.FullscreenOutput, tree.FullscreenGlobal:
		return tree.FullscreenMode(s), true
	}
	return "", false
}

// parseLayout accepts the layout names, with "stacking" as a synonym
// for "stacked".
func parseLayout(s string) (tree.Layout, bool) {
	if s == "stacking" {
		return tree.LayoutStacked, true
	}
	switch tree.Layout(s) {
	case tree.LayoutDefault, tree.LayoutStacked, tree.LayoutTabbed:
		return tree.Layout(s), true
	}
	return "", false
}
