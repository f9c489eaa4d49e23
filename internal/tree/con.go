package tree

// Type classifies a container's role in the tree.
type Type string

const (
	TypeRoot      Type = "root"
	TypeOutput    Type = "output"
	TypeContent   Type = "content"
	TypeDockArea  Type = "dockarea"
	TypeWorkspace Type = "workspace"
	TypeFloating  Type = "floating"
	TypeCon       Type = "con"
)

// Orientation is the split direction of a container's children.
type Orientation string

const (
	NoOrientation Orientation = "none"
	Horizontal    Orientation = "horizontal"
	Vertical      Orientation = "vertical"
)

// Layout is how a container arranges its children.
type Layout string

const (
	LayoutDefault Layout = "default"
	LayoutStacked Layout = "stacked"
	LayoutTabbed  Layout = "tabbed"
)

// BorderStyle is the decoration drawn around a container.
type BorderStyle string

const (
	BorderNormal BorderStyle = "normal"
	BorderNone   BorderStyle = "none"
	Border1Pixel BorderStyle = "1pixel"
)

// borderCycle is the toggle order. Cycling starts from the container's
// current style, so candidates with different styles advance independently.
var borderCycle = []BorderStyle{BorderNormal, BorderNone, Border1Pixel}

// NextBorderStyle returns the style following cur in the toggle cycle.
func NextBorderStyle(cur BorderStyle) BorderStyle {
	for i, s := range borderCycle {
		if s == cur {
			return borderCycle[(i+1)%len(borderCycle)]
		}
	}
	return BorderNormal
}

// FullscreenMode describes how far a fullscreen container extends.
type FullscreenMode string

const (
	FullscreenNone   FullscreenMode = "none"
	FullscreenOutput FullscreenMode = "output"
	FullscreenGlobal FullscreenMode = "global"
)

// Window is the native window bound to a leaf container. Pure layout
// containers (splits, workspaces) have no window.
type Window struct {
	ID       int    `yaml:"id"                 json:"id"`
	Class    string `yaml:"class,omitempty"    json:"class,omitempty"`
	Instance string `yaml:"instance,omitempty" json:"instance,omitempty"`
	Role     string `yaml:"role,omitempty"     json:"role,omitempty"`
	Title    string `yaml:"title,omitempty"    json:"title,omitempty"`
}

// Con is a node in the container tree. Children holds the spatial order
// of child containers; FocusOrder holds the same containers ordered by
// focus recency (most recent first). Every mutation goes through
// Attach/Detach so the two lists never disagree.
type Con struct {
	ID          int
	Name        string
	Type        Type
	Orientation Orientation
	Layout      Layout
	Border      BorderStyle
	Fullscreen  FullscreenMode
	Percent     float64
	Mark        string
	Rect        Rect
	Window      *Window

	Parent     *Con
	Children   []*Con
	FocusOrder []*Con
}

// Attach appends c to parent's child list and the tail of its focus
// order (attaching never steals focus). c must be detached.
func (c *Con) Attach(parent *Con) {
	c.AttachAt(parent, len(parent.Children))
}

// AttachAt inserts c into parent's children at index i and appends it to
// the focus order tail.
func (c *Con) AttachAt(parent *Con, i int) {
	if c.Parent != nil {
		panic("tree: attaching a container that is still attached")
	}
	if i < 0 || i > len(parent.Children) {
		i = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[i+1:], parent.Children[i:])
	parent.Children[i] = c
	parent.FocusOrder = append(parent.FocusOrder, c)
	c.Parent = parent
}

// Detach removes c from its parent's child and focus lists. It is a
// single step so the tree is never observed half-detached.
func (c *Con) Detach() {
	p := c.Parent
	if p == nil {
		return
	}
	p.Children = removeCon(p.Children, c)
	p.FocusOrder = removeCon(p.FocusOrder, c)
	c.Parent = nil
}

func removeCon(list []*Con, c *Con) []*Con {
	for i, e := range list {
		if e == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Index returns c's position among its parent's children, or -1 when
// detached.
func (c *Con) Index() int {
	if c.Parent == nil {
		return -1
	}
	for i, e := range c.Parent.Children {
		if e == c {
			return i
		}
	}
	return -1
}

// NextSibling returns the child after c in its parent's spatial order,
// or nil at the edge.
func (c *Con) NextSibling() *Con {
	i := c.Index()
	if i < 0 || i+1 >= len(c.Parent.Children) {
		return nil
	}
	return c.Parent.Children[i+1]
}

// PrevSibling returns the child before c, or nil at the edge.
func (c *Con) PrevSibling() *Con {
	i := c.Index()
	if i <= 0 {
		return nil
	}
	return c.Parent.Children[i-1]
}

// Workspace walks up the parent chain to the enclosing workspace.
// Returns nil for containers outside any workspace (dock windows,
// outputs, the root).
func (c *Con) Workspace() *Con {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.Type == TypeWorkspace {
			return cur
		}
	}
	return nil
}

// OutputCon walks up to the enclosing output container, or nil.
func (c *Con) OutputCon() *Con {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.Type == TypeOutput {
			return cur
		}
	}
	return nil
}

// FloatingWrapper returns the floating wrapper enclosing c (possibly c
// itself), or nil when c is tiling.
func (c *Con) FloatingWrapper() *Con {
	for cur := c; cur != nil && cur.Type != TypeWorkspace; cur = cur.Parent {
		if cur.Type == TypeFloating {
			return cur
		}
	}
	return nil
}

// IsFloating reports whether c lives inside a floating wrapper.
func (c *Con) IsFloating() bool {
	return c.FloatingWrapper() != nil
}

// DescendFocused follows the focus order down to the focused leaf of
// c's subtree.
func (c *Con) DescendFocused() *Con {
	cur := c
	for len(cur.FocusOrder) > 0 {
		cur = cur.FocusOrder[0]
	}
	return cur
}

// TilingChildren returns c's children excluding floating wrappers and
// dock areas, in spatial order.
func (c *Con) TilingChildren() []*Con {
	var out []*Con
	for _, ch := range c.Children {
		if ch.Type == TypeFloating || ch.Type == TypeDockArea {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// FixPercent re-establishes the percent invariant for c's tiling
// children: zero (uninitialized) shares are seeded with an equal split
// of the remainder, then all shares are normalized to sum to 1.
func (c *Con) FixPercent() {
	children := c.TilingChildren()
	if len(children) == 0 {
		return
	}
	var sum float64
	zero := 0
	for _, ch := range children {
		if ch.Percent == 0 {
			zero++
		} else {
			sum += ch.Percent
		}
	}
	if zero > 0 {
		seed := (1.0 - sum) / float64(zero)
		if seed <= 0 {
			seed = 1.0 / float64(len(children))
		}
		for _, ch := range children {
			if ch.Percent == 0 {
				ch.Percent = seed
				sum += seed
			}
		}
	}
	if sum <= 0 {
		return
	}
	for _, ch := range children {
		ch.Percent /= sum
	}
}
