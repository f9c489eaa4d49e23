package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tilectl/tilectl/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server exposing layout commands as tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		s := server.New(server.Config{
			Transport:        transport,
			Port:             port,
			StatePath:        cfg.StatePath,
			AutoBackAndForth: cfg.AutoBackAndForth,
		}, log)
		return s.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "MCP transport: stdio or streamable-http")
	serveCmd.Flags().Int("port", 4680, "Port for streamable-http transport")
}
