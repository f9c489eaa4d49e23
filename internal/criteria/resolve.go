package criteria

import "github.com/tilectl/tilectl/internal/tree"

// Resolve filters a snapshot of all live containers down to those
// matching c, in discovery (preorder) order. The returned slice holds
// weak references; the containers stay owned by the tree.
//
// Per-candidate precedence: a con_id filter matches by identity alone;
// otherwise a mark filter matches candidates carrying a mark; otherwise
// the candidate must own a bound native window satisfying every
// specified window-property filter.
func Resolve(t *tree.Tree, c *Criteria) []*tree.Con {
	var out []*tree.Con
	for _, con := range t.AllCons() {
		if matches(c, con) {
			out = append(out, con)
		}
	}
	return out
}

func matches(c *Criteria, con *tree.Con) bool {
	if c.ConID != 0 {
		return con.ID == c.ConID
	}
	if c.Mark != nil && con.Mark != "" {
		return c.Mark.Matches(con.Mark)
	}
	if con.Window == nil {
		return false
	}
	if c.WindowID >= 0 && con.Window.ID != c.WindowID {
		return false
	}
	if c.Class != nil && !c.Class.Matches(con.Window.Class) {
		return false
	}
	if c.Instance != nil && !c.Instance.Matches(con.Window.Instance) {
		return false
	}
	if c.Role != nil && !c.Role.Matches(con.Window.Role) {
		return false
	}
	if c.Title != nil && !c.Title.Matches(con.Window.Title) {
		return false
	}
	// A candidate that satisfies no positive filter is dropped: at
	// least one window filter must be present to match by window.
	return c.WindowID >= 0 || c.Class != nil || c.Instance != nil ||
		c.Role != nil || c.Title != nil
}
