package tree

import "strings"

// Direction is a screen-space direction used for output and container
// navigation.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// Opposite returns the reverse direction, used for cyclic wraparound.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Orientation maps left/right to horizontal and up/down to vertical.
func (d Direction) Orientation() Orientation {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// IsPrev reports whether the direction points at the previous sibling
// (up/left) rather than the next one (down/right).
func (d Direction) IsPrev() bool {
	return d == DirLeft || d == DirUp
}

// ParseDirection validates a direction keyword.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(s)) {
	case DirLeft, DirRight, DirUp, DirDown:
		return Direction(strings.ToLower(s)), true
	}
	return "", false
}

// Output is a physical display region. Con is its container in the
// tree; the rectangle drives directional comparisons between outputs.
type Output struct {
	Name string
	Rect Rect
	Con  *Con
}

// Content returns the output's content container, which hosts its
// workspaces (dock areas live next to it).
func (o *Output) Content() *Con {
	for _, ch := range o.Con.Children {
		if ch.Type == TypeContent {
			return ch
		}
	}
	return nil
}

// VisibleWorkspace returns the workspace currently shown on this
// output: the top of the content container's focus order.
func (o *Output) VisibleWorkspace() *Con {
	content := o.Content()
	if content == nil || len(content.FocusOrder) == 0 {
		return nil
	}
	return content.FocusOrder[0]
}

// OutputByName looks an output up by identity, bypassing directional
// logic.
func (t *Tree) OutputByName(name string) *Output {
	for _, o := range t.Outputs {
		if strings.EqualFold(o.Name, name) {
			return o
		}
	}
	return nil
}

// OutputContaining returns the output whose rectangle contains the
// point, falling back to the first output.
func (t *Tree) OutputContaining(x, y int) *Output {
	for _, o := range t.Outputs {
		if o.Rect.Contains(x, y) {
			return o
		}
	}
	if len(t.Outputs) > 0 {
		return t.Outputs[0]
	}
	return nil
}

// OutputForCon returns the output owning c's subtree.
func (t *Tree) OutputForCon(c *Con) *Output {
	oc := c.OutputCon()
	for _, o := range t.Outputs {
		if o.Con == oc {
			return o
		}
	}
	if len(t.Outputs) > 0 {
		return t.Outputs[0]
	}
	return nil
}

// NextOutput returns the strict geometric neighbor of from in the given
// direction, or nil when none exists.
func (t *Tree) NextOutput(d Direction, from *Output) *Output {
	var best *Output
	for _, o := range t.Outputs {
		if o == from || !furtherIn(d, from.Rect, o.Rect) {
			continue
		}
		// keep the nearest candidate in that direction
		if best == nil || furtherIn(d, o.Rect, best.Rect) {
			best = o
		}
	}
	return best
}

// OutermostOutput returns the output furthest in the given direction.
// Combined with NextOutput it makes directional lookup a total cyclic
// function: no neighbor to the right wraps to the leftmost output.
func (t *Tree) OutermostOutput(d Direction) *Output {
	var best *Output
	for _, o := range t.Outputs {
		if best == nil || furtherIn(d, best.Rect, o.Rect) {
			best = o
		}
	}
	return best
}

// OutputFromString resolves a direction keyword with wraparound, or an
// explicit output name by identity.
func (t *Tree) OutputFromString(current *Output, s string) *Output {
	d, ok := ParseDirection(s)
	if !ok {
		return t.OutputByName(s)
	}
	if o := t.NextOutput(d, current); o != nil {
		return o
	}
	return t.OutermostOutput(d.Opposite())
}

// furtherIn reports whether b lies strictly further than a in the given
// direction.
func furtherIn(d Direction, a, b Rect) bool {
	switch d {
	case DirLeft:
		return b.X < a.X
	case DirRight:
		return b.X > a.X
	case DirUp:
		return b.Y < a.Y
	default:
		return b.Y > a.Y
	}
}
