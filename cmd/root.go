package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tilectl/tilectl/internal/config"
	"github.com/tilectl/tilectl/internal/output"
	"github.com/tilectl/tilectl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tilectl",
	Short: "Drive a tiling window layout from the command line",
	Long:  "A CLI that manipulates a tiling window-manager layout tree: focus, move, resize, split, workspaces, scratchpad.",
}

// cfg is loaded once in the persistent pre-run and shared by all verbs.
var cfg *config.Config

// log is the session logger, configured from --verbose and log.level.
var log zerolog.Logger

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("state", "", "Layout state file (default from config)")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().String("journal", "", "Append dispatched commands to this journal file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if statePath, _ := rootCmd.PersistentFlags().GetString("state"); statePath != "" {
			cfg.StatePath = statePath
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "", "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
