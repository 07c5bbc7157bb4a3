// Package main provides the CLI entry point for aurcheck.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/aurcheck/internal/color"
	internalconfig "github.com/smykla-skalski/aurcheck/internal/config"
	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/logger"
)

var (
	configPath    string
	logLevel      string
	packageName   string
	baseURL       string
	osReleasePath string
	noColorFlag   bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "aurcheck",
	Short: "Check the Arch User Repository for application updates",
	Long: `aurcheck looks up the application package in the Arch User Repository,
compares the published version with the running one and suggests the AUR
helper command that installs the update.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: $XDG_CONFIG_HOME/aurcheck/config.toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"",
		"Log level (debug, info, error)",
	)
	rootCmd.PersistentFlags().StringVar(
		&packageName,
		"package",
		"",
		"AUR package to look up",
	)
	rootCmd.PersistentFlags().StringVar(
		&baseURL,
		"base-url",
		"",
		"AUR web root",
	)
	rootCmd.PersistentFlags().StringVar(
		&osReleasePath,
		"os-release",
		"",
		"Path to the os-release file",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

// buildFlagsMap collects the flag overrides for the config loader.
func buildFlagsMap() map[string]any {
	return map[string]any{
		"log-level":  logLevel,
		"package":    packageName,
		"base-url":   baseURL,
		"os-release": osReleasePath,
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := internalconfig.NewLoader().Load(configPath, buildFlagsMap())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	return cfg, nil
}

// setup loads the configuration and builds a stderr logger from it.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(os.Stderr, level)
	log.Debug("configuration loaded",
		"package", cfg.AUR.Package,
		"base_url", cfg.AUR.BaseURL,
	)

	return cfg, log, nil
}

func newTheme() color.Theme {
	return color.NewTheme(color.Enabled(noColorFlag, os.Stdout))
}
