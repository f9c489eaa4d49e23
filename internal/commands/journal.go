package commands

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tilectl/tilectl/internal/criteria"
)

// Entry is one dispatched command: the verb, the raw criteria clauses,
// and the string arguments, captured at the dispatch boundary.
type Entry struct {
	Verb     string            `yaml:"verb"               json:"verb"`
	Criteria []criteria.Clause `yaml:"criteria,omitempty" json:"criteria,omitempty"`
	Args     []string          `yaml:"args,omitempty"     json:"args,omitempty"`
}

// Journal records every command an engine dispatches, for later replay
// against another tree state.
type Journal struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Record appends one dispatched tuple.
func (j *Journal) Record(verb string, crit *criteria.Criteria, args []string) {
	e := Entry{Verb: verb, Args: append([]string(nil), args...)}
	if crit != nil {
		e.Criteria = append(e.Criteria, crit.Clauses()...)
	}
	j.Entries = append(j.Entries, e)
}

// Encode serializes the journal as yaml.
func (j *Journal) Encode() ([]byte, error) {
	return yaml.Marshal(j)
}

// DecodeJournal parses a recorded journal.
func DecodeJournal(data []byte) (*Journal, error) {
	var j Journal
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse journal: %w", err)
	}
	return &j, nil
}

// Replay re-applies every recorded entry through the engine's dispatch
// path. Recording is suspended for the duration so a replaying engine
// does not journal its own replay.
func (j *Journal) Replay(e *Engine) []Result {
	saved := e.journal
	e.journal = nil
	defer func() { e.journal = saved }()

	results := make([]Result, 0, len(j.Entries))
	for _, entry := range j.Entries {
		crit := criteria.New()
		for _, cl := range entry.Criteria {
			if err := crit.AddFilter(cl.Kind, cl.Value); err != nil {
				e.log.Warn().Err(err).Str("kind", cl.Kind).Msg("dropping journal criterion")
			}
		}
		results = append(results, e.Dispatch(entry.Verb, crit, entry.Args...))
	}
	return results
}
