// Package config loads tilectl settings from a config file and the
// environment via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings every command needs.
type Config struct {
	// StatePath is the layout state file the session operates on.
	StatePath string
	// AutoBackAndForth makes `workspace NAME` bounce to the previous
	// workspace when NAME is already focused.
	AutoBackAndForth bool
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads the config file (if present) and the TILECTL_* environment.
// Precedence: environment over file over defaults. A missing config
// file is not an error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tilectl"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TILECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("state.path", defaultStatePath())
	v.SetDefault("workspace.auto_back_and_forth", false)
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		StatePath:        v.GetString("state.path"),
		AutoBackAndForth: v.GetBool("workspace.auto_back_and_forth"),
		LogLevel:         v.GetString("log.level"),
	}, nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tilectl-state.yaml"
	}
	return filepath.Join(dir, "tilectl", "state.yaml")
}
