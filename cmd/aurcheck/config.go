package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/aurcheck/internal/config"
)

var (
	configInitForce bool
	configInitPath  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the aurcheck configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Long: `Write the default configuration as TOML.

Without --path the file goes to $XDG_CONFIG_HOME/aurcheck/config.toml. An existing
file is kept unless --force is given.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(
		&configInitForce,
		"force",
		"f",
		false,
		"Overwrite an existing configuration file",
	)
	configInitCmd.Flags().StringVar(
		&configInitPath,
		"path",
		"",
		"Destination file (default: $XDG_CONFIG_HOME/aurcheck/config.toml)",
	)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	writer := internalconfig.NewWriter()

	path := configInitPath
	if path == "" {
		path = writer.GlobalConfigPath()
	}

	if err := writer.WriteFile(path, internalconfig.DefaultConfig(), configInitForce); err != nil {
		if errors.Is(err, internalconfig.ErrConfigExists) {
			return errors.WithHint(err, "use --force to overwrite")
		}

		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

	return nil
}
