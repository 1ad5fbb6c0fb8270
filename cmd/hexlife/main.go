// Command hexlife runs a Life-family automaton on a hex-sphere grid.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hexlife/pkg/sims/life"
)

var (
	configPath string
	logLevel   string
	overrides  map[string]string

	rootCmd = &cobra.Command{
		Use:   "hexlife",
		Short: "Life on the hexagonal cells of a sphere",
		Long: `hexlife runs a birth/survival automaton on an H3 tessellation of the
globe. Settings come from an optional YAML file and --set overrides.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringToStringVar(&overrides, "set", nil, "config override as key=value, e.g. --set resolution=3")

	rootCmd.AddCommand(runCmd, sweepCmd, patternsCmd, viewCmd)
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig reads --config, if given, and applies --set overrides.
func loadConfig() (life.Config, error) {
	cfg := life.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = life.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
