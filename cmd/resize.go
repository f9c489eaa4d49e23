package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <grow|shrink> <left|right|up|down> [px] [ppt]",
	Short: "Resize the focused container",
	Long: "Resize the focused container. Floating containers resize by px; tiling containers " +
		"redistribute ppt percentage points between the container and its sibling.",
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		px, ppt := "10", "10"
		if len(args) >= 3 {
			if _, err := strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid pixel amount: %s", args[2])
			}
			px = args[2]
		}
		if len(args) == 4 {
			if _, err := strconv.Atoi(args[3]); err != nil {
				return fmt.Errorf("invalid percentage-point amount: %s", args[3])
			}
			ppt = args[3]
		}
		return dispatch(cmd, "resize", args[0], args[1], px, ppt)
	},
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	addCriteriaFlags(resizeCmd)
}
