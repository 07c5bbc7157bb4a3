package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/aurcheck/internal/schema"
)

var (
	schemaTarget  string
	schemaOutput  string
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schema for the check result or the config file",
	Long: `Generate a JSON Schema (Draft 2020-12) derived from the Go types.

Examples:
  aurcheck schema                          # Result of "check --json"
  aurcheck schema --target config          # Configuration file
  aurcheck schema --output result.json     # Write to file
  aurcheck schema --compact                # Compact output`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	targets := make([]string, 0, len(schema.Targets()))
	for _, t := range schema.Targets() {
		targets = append(targets, string(t))
	}

	schemaCmd.Flags().StringVarP(
		&schemaTarget,
		"target", "t",
		string(schema.TargetResult),
		"Schema to generate ("+strings.Join(targets, ", ")+")",
	)
	schemaCmd.Flags().StringVarP(
		&schemaOutput,
		"output", "o",
		"",
		"Write schema to file instead of stdout",
	)
	schemaCmd.Flags().BoolVar(
		&schemaCompact,
		"compact",
		false,
		"Output compact JSON without indentation",
	)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(schema.Target(schemaTarget), !schemaCompact)
	if err != nil {
		return errors.Wrap(err, "generating schema")
	}

	if schemaOutput != "" {
		const filePerms = 0o644

		if writeErr := os.WriteFile(schemaOutput, data, filePerms); writeErr != nil {
			return errors.Wrap(writeErr, "writing schema file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", schemaOutput)

		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)

	return errors.Wrap(err, "writing schema")
}
