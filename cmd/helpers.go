package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tilectl/tilectl/internal/commands"
	"github.com/tilectl/tilectl/internal/criteria"
	"github.com/tilectl/tilectl/internal/output"
	"github.com/tilectl/tilectl/internal/state"
)

// addCriteriaFlags registers the container match flags shared by every
// verb that accepts criteria.
func addCriteriaFlags(c *cobra.Command) {
	c.Flags().String("class", "", "Match window class (regex)")
	c.Flags().String("instance", "", "Match window instance (regex)")
	c.Flags().String("role", "", "Match window role (regex)")
	c.Flags().String("title", "", "Match window title (regex)")
	c.Flags().String("mark", "", "Match container mark (regex)")
	c.Flags().Int("con-id", 0, "Match container by id")
	c.Flags().Int("window-id", -1, "Match container by native window id")
}

// buildCriteria collects the match flags into criteria. Filters that
// fail to parse are logged and dropped; the criteria stay usable.
func buildCriteria(c *cobra.Command) *criteria.Criteria {
	crit := criteria.New()
	addRegex := func(kind, flag string) {
		if c.Flags().Lookup(flag) == nil {
			return
		}
		v, _ := c.Flags().GetString(flag)
		if v == "" {
			return
		}
		if err := crit.AddFilter(kind, v); err != nil {
			log.Warn().Err(err).Str("criterion", kind).Msg("dropping filter")
		}
	}
	addRegex("class", "class")
	addRegex("instance", "instance")
	addRegex("window_role", "role")
	addRegex("title", "title")
	addRegex("con_mark", "mark")

	if c.Flags().Lookup("con-id") != nil {
		if id, _ := c.Flags().GetInt("con-id"); id > 0 {
			if err := crit.AddFilter("con_id", strconv.Itoa(id)); err != nil {
				log.Warn().Err(err).Msg("dropping con-id filter")
			}
		}
	}
	if c.Flags().Lookup("window-id") != nil {
		if id, _ := c.Flags().GetInt("window-id"); id >= 0 {
			if err := crit.AddFilter("id", strconv.Itoa(id)); err != nil {
				log.Warn().Err(err).Msg("dropping window-id filter")
			}
		}
	}
	return crit
}

// session is one load-dispatch-save cycle over the state file.
type session struct {
	engine  *commands.Engine
	journal *commands.Journal
	jpath   string
}

// openSession loads the state file and builds an engine over it.
func openSession() (*session, error) {
	t, err := state.Load(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	opts := []commands.Option{
		commands.WithAutoBackAndForth(cfg.AutoBackAndForth),
	}

	s := &session{}
	if jpath, _ := rootCmd.PersistentFlags().GetString("journal"); jpath != "" {
		j := &commands.Journal{}
		if data, err := os.ReadFile(jpath); err == nil {
			if loaded, err := commands.DecodeJournal(data); err == nil {
				j = loaded
			} else {
				log.Warn().Err(err).Str("path", jpath).Msg("ignoring unreadable journal")
			}
		}
		s.journal = j
		s.jpath = jpath
		opts = append(opts, commands.WithJournal(j))
	}

	s.engine = commands.New(t, log, opts...)
	return s, nil
}

// close saves the mutated tree back, then the journal if one is open.
func (s *session) close() error {
	if err := state.Save(cfg.StatePath, s.engine.Tree()); err != nil {
		return err
	}
	if s.journal != nil {
		data, err := s.journal.Encode()
		if err != nil {
			return fmt.Errorf("encode journal: %w", err)
		}
		if err := os.WriteFile(s.jpath, data, 0o644); err != nil {
			return fmt.Errorf("write journal: %w", err)
		}
	}
	return nil
}

// dispatch runs one verb in a fresh session and prints the result.
func dispatch(c *cobra.Command, verb string, args ...string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	res := s.engine.Dispatch(verb, buildCriteria(c), args...)
	if err := s.close(); err != nil {
		return err
	}
	return output.Print(res)
}
