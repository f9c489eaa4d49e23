package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <left|right|up|down [px] | to workspace <name|next|prev|next_on_output|prev_on_output> | to output <name|direction> | workspace to output <name|direction> | scratchpad>",
	Short: "Move containers within the tree, between workspaces, or across outputs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "left", "right", "up", "down":
			px := "10"
			if len(args) == 2 {
				if _, err := strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid pixel amount: %s", args[1])
				}
				px = args[1]
			} else if len(args) > 2 {
				return fmt.Errorf("move %s takes at most a pixel amount", args[0])
			}
			return dispatch(cmd, "move_direction", args[0], px)
		case "to":
			if len(args) == 3 && args[1] == "workspace" {
				switch args[2] {
				case "next", "prev", "next_on_output", "prev_on_output":
					return dispatch(cmd, "move_to_workspace", args[2])
				default:
					return dispatch(cmd, "move_to_workspace_name", args[2])
				}
			}
			if len(args) == 3 && args[1] == "output" {
				return dispatch(cmd, "move_to_output", args[2])
			}
			return fmt.Errorf("usage: move to workspace <name> | move to output <name>")
		case "workspace":
			if len(args) == 4 && args[1] == "to" && args[2] == "output" {
				return dispatch(cmd, "move_workspace_to_output", args[3])
			}
			return fmt.Errorf("usage: move workspace to output <name|direction>")
		case "scratchpad":
			return dispatch(cmd, "move_scratchpad")
		default:
			return fmt.Errorf("unknown move target: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	addCriteriaFlags(moveCmd)
}
