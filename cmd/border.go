package cmd

import (
	"github.com/spf13/cobra"
)

var borderCmd = &cobra.Command{
	Use:   "border <normal|none|1pixel|toggle>",
	Short: "Set or cycle the border style of matched containers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "border", args[0])
	},
}

func init() {
	rootCmd.AddCommand(borderCmd)
	addCriteriaFlags(borderCmd)
}
