package cmd

import (
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <default|stacked|stacking|tabbed>",
	Short: "Change the layout of matched containers or the focused container's parent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "layout", args[0])
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	addCriteriaFlags(layoutCmd)
}
