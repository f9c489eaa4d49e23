package cmd

import (
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <horizontal|vertical|h|v>",
	Short: "Split the focused container in the given orientation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "split", args[0])
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
