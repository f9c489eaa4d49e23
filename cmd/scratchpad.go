package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scratchpadCmd = &cobra.Command{
	Use:   "scratchpad show",
	Short: "Show a scratchpad container on the current workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "show" {
			return fmt.Errorf("unknown scratchpad action: %s", args[0])
		}
		return dispatch(cmd, "scratchpad_show")
	},
}

func init() {
	rootCmd.AddCommand(scratchpadCmd)
	addCriteriaFlags(scratchpadCmd)
}
