package commands

import (
	"math"

	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/tree"
)

// minPercent is the smallest share a resize may leave either sibling
// with. Resizes that would cross it succeed without changing anything.
const minPercent = 0.05

const dblEpsilon = 2.220446049250313e-16

// definitelyGreaterThan is a relative-epsilon "a > b" tolerant of
// floating-point noise, so boundary resizes do not oscillate.
func definitelyGreaterThan(a, b, epsilon float64) bool {
	m := math.Abs(a)
	if m < math.Abs(b) {
		m = math.Abs(b)
	}
	return (a - b) > m*epsilon
}

// Resize redistributes percentage shares between the focused container
// and its sibling in the given direction, or moves/grows the floating
// rectangle when the focused container floats.
func (e *Engine) Resize(crit *criteria.Criteria, way ResizeWay, dir tree.Direction, px, ppt int) Result {
	if way == ResizeShrink {
		px = -px
		ppt = -ppt
	}

	focused := e.tree.Focused()
	if wrapper := focused.FloatingWrapper(); wrapper != nil {
		e.log.Debug().Int("px", px).Str("direction", string(dir)).Msg("floating resize")
		switch dir {
		case tree.DirUp:
			wrapper.Rect.Y -= px
			wrapper.Rect.Height += px
		case tree.DirDown:
			wrapper.Rect.Height += px
		case tree.DirLeft:
			wrapper.Rect.X -= px
			wrapper.Rect.Width += px
		default:
			wrapper.Rect.Width += px
		}
		e.relayout()
		return okResult
	}

	// Stacked and tabbed ancestors expose no independent sizes; skip
	// past them first.
	current := focused
	for current.Parent != nil &&
		(current.Parent.Layout == tree.LayoutStacked || current.Parent.Layout == tree.LayoutTabbed) {
		current = current.Parent
	}

	// Then ascend until the parent's orientation matches the direction.
	// Focus can sit on a structural container (root, output) in a
	// hand-edited state file; the walk must stop there, not crash.
	searchOrientation := dir.Orientation()
	for current.Type != tree.TypeWorkspace && current.Type != tree.TypeFloating &&
		current.Parent != nil && current.Parent.Orientation != searchOrientation {
		current = current.Parent
	}
	if current.Type == tree.TypeWorkspace || current.Type == tree.TypeFloating ||
		current.Parent == nil || current.Parent.Orientation != searchOrientation {
		return failf("cannot resize in that direction: no %s split container in the focus chain",
			searchOrientation)
	}

	var other *tree.Con
	if dir.IsPrev() {
		other = prevTilingSibling(current)
	} else {
		other = nextTilingSibling(current)
	}
	if other == nil {
		return failf("no other container in this direction found, cannot resize")
	}

	// Seed uninitialized shares with an equal split before applying the
	// delta.
	children := len(current.Parent.TilingChildren())
	defaultPercent := 1.0 / float64(children)
	if current.Percent == 0 {
		current.Percent = defaultPercent
	}
	if other.Percent == 0 {
		other.Percent = defaultPercent
	}

	delta := float64(ppt) / 100.0
	newCurrent := current.Percent + delta
	newOther := other.Percent - delta
	if definitelyGreaterThan(newCurrent, minPercent, dblEpsilon) &&
		definitelyGreaterThan(newOther, minPercent, dblEpsilon) {
		current.Percent = newCurrent
		other.Percent = newOther
	} else {
		e.log.Debug().Msg("not resizing, already at minimum size")
	}

	e.relayout()
	return okResult
}

func prevTilingSibling(c *tree.Con) *tree.Con {
	for s := c.PrevSibling(); s != nil; s = s.PrevSibling() {
		if s.Type != tree.TypeFloating && s.Type != tree.TypeDockArea {
			return s
		}
	}
	return nil
}

func nextTilingSibling(c *tree.Con) *tree.Con {
	for s := c.NextSibling(); s != nil; s = s.NextSibling() {
		if s.Type != tree.TypeFloating && s.Type != tree.TypeDockArea {
			return s
		}
	}
	return nil
}
