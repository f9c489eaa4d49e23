package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tilectl/tilectl/internal/output"
	"github.com/tilectl/tilectl/internal/state"
	"github.com/tilectl/tilectl/internal/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Dump the layout tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := state.Load(cfg.StatePath)
		if err != nil {
			return err
		}
		return output.Print(t.Snapshot())
	},
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := state.Load(cfg.StatePath)
		if err != nil {
			return err
		}
		return output.Print(tree.WorkspaceInfos(t))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(workspacesCmd)
}
