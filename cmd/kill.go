package cmd

import (
	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:   "kill [window|client]",
	Short: "Close the focused container or every matched container",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "kill", args...)
	},
}

func init() {
	rootCmd.AddCommand(killCmd)
	addCriteriaFlags(killCmd)
}
