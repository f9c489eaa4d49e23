package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is the serialized form of a container. Focus stores child ids in
// focus-recency order; spatial order is the order of Children.
type Node struct {
	ID          int            `yaml:"id"                    json:"id"`
	Name        string         `yaml:"name,omitempty"        json:"name,omitempty"`
	Type        Type           `yaml:"type"                  json:"type"`
	Orientation Orientation    `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Layout      Layout         `yaml:"layout,omitempty"      json:"layout,omitempty"`
	Border      BorderStyle    `yaml:"border,omitempty"      json:"border,omitempty"`
	Fullscreen  FullscreenMode `yaml:"fullscreen,omitempty"  json:"fullscreen,omitempty"`
	Percent     float64        `yaml:"percent,omitempty"     json:"percent,omitempty"`
	Mark        string         `yaml:"mark,omitempty"        json:"mark,omitempty"`
	Rect        Rect           `yaml:"rect"                  json:"rect"`
	Window      *Window        `yaml:"window,omitempty"      json:"window,omitempty"`
	Focus       []int          `yaml:"focus,omitempty"       json:"focus,omitempty"`
	Children    []Node         `yaml:"children,omitempty"    json:"children,omitempty"`
}

// Snapshot is the serialized form of a whole tree.
type Snapshot struct {
	NextID        int    `yaml:"next_id"                  json:"next_id"`
	Focused       int    `yaml:"focused"                  json:"focused"`
	LastWorkspace string `yaml:"last_workspace,omitempty" json:"last_workspace,omitempty"`
	Root          Node   `yaml:"root"                     json:"root"`
}

// Snapshot captures the tree in a serializable form.
func (t *Tree) Snapshot() Snapshot {
	return Snapshot{
		NextID:        t.nextID,
		Focused:       t.focused,
		LastWorkspace: t.lastWorkspace,
		Root:          nodeFromCon(t.Root),
	}
}

func nodeFromCon(c *Con) Node {
	n := Node{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Orientation: c.Orientation,
		Layout:      c.Layout,
		Border:      c.Border,
		Fullscreen:  c.Fullscreen,
		Percent:     c.Percent,
		Mark:        c.Mark,
		Rect:        c.Rect,
		Window:      c.Window,
	}
	for _, ch := range c.FocusOrder {
		n.Focus = append(n.Focus, ch.ID)
	}
	for _, ch := range c.Children {
		n.Children = append(n.Children, nodeFromCon(ch))
	}
	return n
}

// FromSnapshot reconstructs a tree, rebuilding parent links and focus
// orders from ids.
func FromSnapshot(s Snapshot) (*Tree, error) {
	t := &Tree{
		nextID:        s.NextID,
		focused:       s.Focused,
		lastWorkspace: s.LastWorkspace,
	}
	root, err := conFromNode(s.Root)
	if err != nil {
		return nil, err
	}
	if root.Type != TypeRoot {
		return nil, fmt.Errorf("snapshot root has type %q, want %q", root.Type, TypeRoot)
	}
	t.Root = root
	for _, ch := range root.Children {
		if ch.Type != TypeOutput {
			continue
		}
		t.Outputs = append(t.Outputs, &Output{Name: ch.Name, Rect: ch.Rect, Con: ch})
	}
	if len(t.Outputs) == 0 {
		return nil, fmt.Errorf("snapshot has no outputs")
	}
	foc := t.ByID(t.focused)
	if foc == nil {
		return nil, fmt.Errorf("snapshot focused id %d not present in tree", t.focused)
	}
	// Focus always sits on a workspace or inside one; a snapshot
	// pointing it at the root, an output, or a content container would
	// break every focus-chain walk downstream.
	if foc.Workspace() == nil {
		return nil, fmt.Errorf("snapshot focused id %d is not inside a workspace", t.focused)
	}
	if t.nextID <= 0 {
		t.nextID = 1
	}
	for _, c := range t.AllCons() {
		if c.ID >= t.nextID {
			t.nextID = c.ID + 1
		}
	}
	return t, nil
}

func conFromNode(n Node) (*Con, error) {
	c := &Con{
		ID:          n.ID,
		Name:        n.Name,
		Type:        n.Type,
		Orientation: n.Orientation,
		Layout:      n.Layout,
		Border:      n.Border,
		Fullscreen:  n.Fullscreen,
		Percent:     n.Percent,
		Mark:        n.Mark,
		Rect:        n.Rect,
		Window:      n.Window,
	}
	if c.Orientation == "" {
		c.Orientation = NoOrientation
	}
	if c.Layout == "" {
		c.Layout = LayoutDefault
	}
	if c.Border == "" {
		c.Border = BorderNormal
	}
	if c.Fullscreen == "" {
		c.Fullscreen = FullscreenNone
	}
	byID := make(map[int]*Con, len(n.Children))
	for _, cn := range n.Children {
		child, err := conFromNode(cn)
		if err != nil {
			return nil, err
		}
		child.Parent = c
		c.Children = append(c.Children, child)
		byID[child.ID] = child
	}
	seen := make(map[int]bool, len(n.Focus))
	for _, id := range n.Focus {
		child, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("container %d: focus order references unknown child %d", n.ID, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("container %d: child %d appears twice in focus order", n.ID, id)
		}
		seen[id] = true
		c.FocusOrder = append(c.FocusOrder, child)
	}
	// Children missing from the focus list go to the back, spatial order.
	for _, child := range c.Children {
		if !seen[child.ID] {
			c.FocusOrder = append(c.FocusOrder, child)
		}
	}
	return c, nil
}

// EncodeYAML serializes the snapshot of t.
func (t *Tree) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(t.Snapshot())
}

// DecodeYAML parses a snapshot and reconstructs the tree.
func DecodeYAML(data []byte) (*Tree, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse tree snapshot: %w", err)
	}
	return FromSnapshot(s)
}
