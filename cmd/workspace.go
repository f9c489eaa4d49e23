package cmd

import (
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace <name|next|prev|next_on_output|prev_on_output|back_and_forth>",
	Short: "Switch to a workspace, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "workspace", args[0])
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}
