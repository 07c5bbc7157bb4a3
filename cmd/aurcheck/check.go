package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/aurcheck/internal/aur"
	"github.com/smykla-skalski/aurcheck/internal/color"
	"github.com/smykla-skalski/aurcheck/pkg/update"
)

var (
	checkCurrent string
	checkJSON    bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the AUR for a newer release",
	Long: `Query the AUR RPC for the configured package and compare the published
version with --current. Package revisions (the "-N" suffix) are ignored.

Examples:
  aurcheck check --current 1.4.0           # Styled summary
  aurcheck check --current 1.4.0 --json    # Machine-readable result`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(
		&checkCurrent,
		"current",
		"",
		"Currently installed version",
	)
	checkCmd.Flags().BoolVar(
		&checkJSON,
		"json",
		false,
		"Print the result as JSON",
	)

	_ = checkCmd.MarkFlagRequired("current")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	source := aur.New(cfg, aur.WithLogger(log))

	info, err := source.Query(cmd.Context(), checkCurrent)
	if err != nil {
		return errors.Wrap(err, "checking for updates")
	}

	out := cmd.OutOrStdout()

	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(info), "encoding result")
	}

	printSummary(out, info, newTheme())

	return nil
}

func printSummary(w io.Writer, info *update.Info, theme color.Theme) {
	if info.HasUpdate {
		fmt.Fprintln(w, theme.Available.Render("Update available"))
	} else {
		fmt.Fprintln(w, theme.UpToDate.Render("Up to date"))
	}

	rows := [][2]string{
		{theme.Label.Render("current:"), theme.Version.Render(info.CurrentVersion)},
		{theme.Label.Render("latest:"), theme.Version.Render(info.LatestVersion)},
	}

	if info.DownloadURL != nil {
		rows = append(rows, [2]string{theme.Label.Render("page:"), theme.Muted.Render(*info.DownloadURL)})
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, visibleWidth(row[0]))
	}

	for _, row := range rows {
		fmt.Fprintf(w, "  %s %s\n", padToWidth(row[0], labelWidth), row[1])
	}

	if info.ReleaseNotes != nil {
		fmt.Fprintf(w, "\n%s\n", *info.ReleaseNotes)
	}
}

// visibleWidth is the display width of s without ANSI escape codes.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// padToWidth right-pads s with spaces so its display width reaches w.
func padToWidth(s string, w int) string {
	visible := visibleWidth(s)
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}
