package tree

import "fmt"

// Tree is the shared container tree a command session mutates. All
// mutation is synchronous; commands run one at a time to completion.
type Tree struct {
	Root    *Con
	Outputs []*Output

	focused       int
	nextID        int
	lastWorkspace string
}

// New builds a tree with the given outputs, one workspace ("1") on the
// first output, and focus on that workspace.
func New(outputs ...*Output) *Tree {
	t := &Tree{nextID: 1}
	t.Root = t.NewCon(TypeRoot, "root")
	if len(outputs) == 0 {
		outputs = []*Output{{Name: "default", Rect: Rect{Width: 1280, Height: 800}}}
	}
	for _, o := range outputs {
		t.addOutput(o)
	}
	ws := t.NewCon(TypeWorkspace, "1")
	ws.Attach(t.Outputs[0].Content())
	t.SetFocused(ws)
	return t
}

func (t *Tree) addOutput(o *Output) {
	oc := t.NewCon(TypeOutput, o.Name)
	oc.Rect = o.Rect
	oc.Attach(t.Root)
	content := t.NewCon(TypeContent, "content")
	content.Rect = o.Rect
	content.Attach(oc)
	o.Con = oc
	t.Outputs = append(t.Outputs, o)
}

// NewCon allocates a container with a fresh id. The container starts
// detached.
func (t *Tree) NewCon(typ Type, name string) *Con {
	c := &Con{
		ID:          t.nextID,
		Name:        name,
		Type:        typ,
		Orientation: NoOrientation,
		Layout:      LayoutDefault,
		Border:      BorderNormal,
		Fullscreen:  FullscreenNone,
	}
	if typ == TypeWorkspace {
		c.Orientation = Horizontal
	}
	t.nextID++
	return c
}

// Focused returns the globally focused container.
func (t *Tree) Focused() *Con {
	if c := t.ByID(t.focused); c != nil {
		return c
	}
	return t.Root
}

// SetFocused makes c the globally focused container and records it at
// the head of every ancestor's focus order. This is the only way focus
// recency changes.
func (t *Tree) SetFocused(c *Con) {
	t.focused = c.ID
	for cur := c; cur.Parent != nil; cur = cur.Parent {
		fo := cur.Parent.FocusOrder
		for i, e := range fo {
			if e == cur {
				copy(fo[1:i+1], fo[:i])
				fo[0] = cur
				break
			}
		}
	}
}

// AllCons returns every container in the tree in preorder discovery
// order. Criteria resolution snapshots this list; candidate ordering
// follows it.
func (t *Tree) AllCons() []*Con {
	var out []*Con
	var walk func(c *Con)
	walk = func(c *Con) {
		out = append(out, c)
		for _, ch := range c.Children {
			walk(ch)
		}
	}
	walk(t.Root)
	return out
}

// ByID finds a container by id, or nil.
func (t *Tree) ByID(id int) *Con {
	for _, c := range t.AllCons() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ByMark finds the container holding the given mark, or nil. Marks are
// unique tree-wide.
func (t *Tree) ByMark(mark string) *Con {
	for _, c := range t.AllCons() {
		if c.Mark == mark {
			return c
		}
	}
	return nil
}

// ClearMark removes mark from every container holding it.
func (t *Tree) ClearMark(mark string) {
	for _, c := range t.AllCons() {
		if c.Mark == mark {
			c.Mark = ""
		}
	}
}

// OpenCon creates a new leaf container next to the focused one (or
// inside it when the focused container is a workspace) and focuses it.
func (t *Tree) OpenCon(name string) *Con {
	c := t.NewCon(TypeCon, name)
	target := t.Focused()
	if target.Type == TypeWorkspace || target.Type == TypeContent {
		ws := target
		if ws.Type == TypeContent {
			ws = target.DescendFocused().Workspace()
		}
		if ws == nil {
			ws = t.CurrentWorkspace()
		}
		c.Attach(ws)
		ws.FixPercent()
	} else {
		parent := target.Parent
		c.AttachAt(parent, target.Index()+1)
		parent.FixPercent()
	}
	t.SetFocused(c)
	return c
}

// Split inserts a new orientation boundary above c: a fresh split
// container takes c's place (and share) in the parent, and c becomes
// its only child. Structural containers (root, outputs, content) are
// not splittable and are left untouched.
func (t *Tree) Split(c *Con, o Orientation) {
	if c.Type == TypeWorkspace {
		// Splitting a workspace just flips its orientation; there is
		// nothing to wrap.
		c.Orientation = o
		return
	}
	if c.Type != TypeCon || c.Parent == nil {
		return
	}
	parent := c.Parent
	idx := c.Index()
	split := t.NewCon(TypeCon, "")
	split.Orientation = o
	split.Percent = c.Percent
	c.Detach()
	split.AttachAt(parent, idx)
	c.Percent = 1.0
	c.Attach(split)
	t.SetFocused(c)
}

// Close removes c (a leaf or whole subtree) from the tree, repairs the
// sibling percent invariant, and moves focus to the closest remaining
// container if c held it.
func (t *Tree) Close(c *Con) error {
	if c.Type == TypeRoot || c.Type == TypeOutput || c.Type == TypeContent {
		return fmt.Errorf("cannot close %s container", c.Type)
	}
	parent := c.Parent
	hadFocus := t.isInSubtree(t.Focused(), c)
	c.Detach()
	if parent == nil {
		return nil
	}
	parent.FixPercent()

	// Collapse a split container left with a single child.
	if parent.Type == TypeCon && len(parent.Children) == 1 && parent.Parent != nil {
		only := parent.Children[0]
		gp := parent.Parent
		idx := parent.Index()
		pct := parent.Percent
		only.Detach()
		parent.Detach()
		only.AttachAt(gp, idx)
		only.Percent = pct
		parent = gp
	}

	if hadFocus {
		t.SetFocused(parent.DescendFocused())
	}
	return nil
}

func (t *Tree) isInSubtree(c, root *Con) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

// FocusDirection moves focus to the previous (up/left) or next
// (down/right) sibling in the first ancestor group whose orientation
// matches, wrapping at the edges, then descends to its focused leaf.
func (t *Tree) FocusDirection(prev bool, o Orientation) error {
	current := t.Focused()
	for current.Type != TypeWorkspace && current.Type != TypeFloating {
		if current.Parent == nil {
			return fmt.Errorf("no %s container to focus in", o)
		}
		if current.Parent.Orientation == o {
			break
		}
		current = current.Parent
	}
	if current.Type == TypeWorkspace || current.Type == TypeFloating {
		return fmt.Errorf("no %s split container in the focus chain", o)
	}

	siblings := current.Parent.TilingChildren()
	if len(siblings) < 2 {
		return fmt.Errorf("no other container in this direction")
	}
	idx := -1
	for i, s := range siblings {
		if s == current {
			idx = i
		}
	}
	var next *Con
	if prev {
		if idx == 0 {
			next = siblings[len(siblings)-1]
		} else {
			next = siblings[idx-1]
		}
	} else {
		next = siblings[(idx+1)%len(siblings)]
	}
	t.SetFocused(next.DescendFocused())
	return nil
}

// MoveDirection performs a tree-order move of the focused container:
// it swaps the container with its sibling in the given direction within
// the first ancestor group of matching orientation.
func (t *Tree) MoveDirection(prev bool, o Orientation) error {
	current := t.Focused()
	for current.Type != TypeWorkspace && current.Type != TypeFloating {
		if current.Parent == nil || current.Parent.Orientation == o {
			break
		}
		current = current.Parent
	}
	if current.Type == TypeWorkspace || current.Type == TypeFloating ||
		current.Parent == nil || current.Parent.Orientation != o {
		return fmt.Errorf("cannot move: no %s split container in the focus chain", o)
	}

	var other *Con
	if prev {
		other = current.PrevSibling()
	} else {
		other = current.NextSibling()
	}
	if other == nil || other.Type == TypeFloating || other.Type == TypeDockArea {
		return fmt.Errorf("no container in this direction to move past")
	}
	parent := current.Parent
	i, j := current.Index(), other.Index()
	parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
	return nil
}
