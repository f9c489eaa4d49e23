package cmd

import (
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a new empty container next to the focused one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "open")
	},
}

var nopCmd = &cobra.Command{
	Use:   "nop [comment]",
	Short: "Do nothing, successfully",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "nop", args...)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(nopCmd)
}
