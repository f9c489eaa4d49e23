package cmd

import (
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <name>",
	Short: "Mark matched containers (marks are unique tree-wide)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "mark", args[0])
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	addCriteriaFlags(markCmd)
}
