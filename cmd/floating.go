package cmd

import (
	"github.com/spf13/cobra"
)

var floatingCmd = &cobra.Command{
	Use:   "floating <enable|disable|toggle>",
	Short: "Switch matched containers between floating and tiling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "floating", args[0])
	},
}

func init() {
	rootCmd.AddCommand(floatingCmd)
	addCriteriaFlags(floatingCmd)
}
