package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tilectl/tilectl/internal/commands"
	"github.com/tilectl/tilectl/internal/output"
	"github.com/tilectl/tilectl/internal/state"
)

var replayCmd = &cobra.Command{
	Use:   "replay <journal-file>",
	Short: "Re-apply a recorded command journal to the current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		journal, err := commands.DecodeJournal(data)
		if err != nil {
			return err
		}

		t, err := state.Load(cfg.StatePath)
		if err != nil {
			return err
		}
		engine := commands.New(t, log,
			commands.WithAutoBackAndForth(cfg.AutoBackAndForth))

		results := journal.Replay(engine)
		if err := state.Save(cfg.StatePath, t); err != nil {
			return err
		}
		return output.Print(results)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
