package cmd

import (
	"github.com/spf13/cobra"
)

var fullscreenCmd = &cobra.Command{
	Use:   "fullscreen [output|global]",
	Short: "Toggle fullscreen on matched containers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "fullscreen", args...)
	},
}

func init() {
	rootCmd.AddCommand(fullscreenCmd)
	addCriteriaFlags(fullscreenCmd)
}
