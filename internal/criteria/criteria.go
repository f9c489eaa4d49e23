// Package criteria builds and resolves match criteria against the
// container tree. Criteria are built incrementally, one filter per
// clause, then consumed once by Resolve; they are never persisted
// across commands.
package criteria

import (
	"fmt"
	"regexp"
	"strconv"
)

// Regex is a compiled pattern plus its source text.
type Regex struct {
	Pattern string
	re      *regexp.Regexp
}

// Compile builds a Regex from a pattern string.
func Compile(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Regex{Pattern: pattern, re: re}, nil
}

// Matches tests the regex against a property string.
func (r *Regex) Matches(text string) bool {
	return r.re.MatchString(text)
}

// Criteria is a set of optional filters. A zero Criteria matches the
// focused container (the empty-criteria default rule); criteria with
// filters that match nothing select nothing. The two states are
// distinct.
type Criteria struct {
	ConID    int    // container identity; 0 = unset (ids start at 1)
	WindowID int    // native window id; -1 = unset
	Mark     *Regex
	Class    *Regex
	Instance *Regex
	Role     *Regex
	Title    *Regex

	set     bool
	clauses []Clause
}

// Clause is one raw (kind, value) filter clause, kept for journaling
// at the dispatch boundary.
type Clause struct {
	Kind  string `yaml:"kind"  json:"kind"`
	Value string `yaml:"value" json:"value"`
}

// New returns criteria with no filters.
func New() *Criteria {
	return &Criteria{WindowID: -1}
}

// IsEmpty reports whether no filter was ever added. Commands use this
// to distinguish "operate on focused" from "matched nothing".
func (c *Criteria) IsEmpty() bool {
	return !c.set
}

// Clauses returns the raw filter clauses added so far, in order.
func (c *Criteria) Clauses() []Clause {
	return c.clauses
}

// AddFilter parses value per kind and stores the filter. Textual kinds
// compile a regex; identifier kinds parse a non-negative integer.
// Unknown kinds and unparsable values are reported as errors; callers
// log them and drop the filter (the criteria stay usable).
func (c *Criteria) AddFilter(kind, value string) error {
	if err := c.addFilter(kind, value); err != nil {
		return err
	}
	c.clauses = append(c.clauses, Clause{Kind: kind, Value: value})
	return nil
}

func (c *Criteria) addFilter(kind, value string) error {
	switch kind {
	case "class":
		return c.setRegex(&c.Class, value)
	case "instance":
		return c.setRegex(&c.Instance, value)
	case "window_role":
		return c.setRegex(&c.Role, value)
	case "title":
		return c.setRegex(&c.Title, value)
	case "con_mark":
		return c.setRegex(&c.Mark, value)
	case "con_id":
		id, err := parseID(value)
		if err != nil {
			return fmt.Errorf("con_id: %w", err)
		}
		c.ConID = id
		c.set = true
		return nil
	case "id":
		id, err := parseID(value)
		if err != nil {
			return fmt.Errorf("window id: %w", err)
		}
		c.WindowID = id
		c.set = true
		return nil
	default:
		return fmt.Errorf("unknown criterion: %s", kind)
	}
}

func (c *Criteria) setRegex(dst **Regex, value string) error {
	re, err := Compile(value)
	if err != nil {
		return err
	}
	*dst = re
	c.set = true
	return nil
}

func parseID(value string) (int, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", value)
	}
	if id < 0 {
		return 0, fmt.Errorf("id must be non-negative, got %d", id)
	}
	return int(id), nil
}
