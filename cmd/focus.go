package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus [left|right|up|down|parent|child|floating|tiling|mode_toggle|output <name>]",
	Short: "Focus a container by criteria, direction, level, regime, or output",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return dispatch(cmd, "focus")
		}
		switch args[0] {
		case "left", "right", "up", "down":
			return dispatch(cmd, "focus_direction", args[0])
		case "parent", "child":
			return dispatch(cmd, "focus_level", args[0])
		case "floating", "tiling", "mode_toggle":
			return dispatch(cmd, "focus_window_mode", args[0])
		case "output":
			if len(args) != 2 {
				return fmt.Errorf("focus output takes an output name or direction")
			}
			return dispatch(cmd, "focus_output", args[1])
		default:
			return fmt.Errorf("unknown focus target: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addCriteriaFlags(focusCmd)
}
