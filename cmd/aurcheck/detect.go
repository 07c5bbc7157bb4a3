package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/aurcheck/internal/aur"
	"github.com/smykla-skalski/aurcheck/internal/color"
	"github.com/smykla-skalski/aurcheck/pkg/config"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected platform family and AUR helper",
	Long: `Probe the host the same way "check" does and print what was found:
whether the system belongs to the Arch Linux family, which AUR helper is
installed and the upgrade command that would be suggested.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

// probeTimeoutUnits limits the probe timeout display to e.g. "1 second 500 milliseconds".
const probeTimeoutUnits = 2

// detection is the outcome of probing the host.
type detection struct {
	arch     bool
	helper   string
	found    bool
	fallback string
	pkg      string
	osRel    string
	timeout  time.Duration
}

func (d detection) command() string {
	helper := d.helper
	if !d.found {
		helper = d.fallback
	}

	return aur.UpgradeCommand(helper, d.pkg)
}

func runDetect(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	source := aur.New(cfg, aur.WithLogger(log))
	d := detect(cmd, source, cfg)

	fmt.Fprintln(cmd.OutOrStdout(), renderDetection(d, newTheme()))

	return nil
}

func detect(cmd *cobra.Command, source aur.Source, cfg *config.Config) detection {
	helper, found := source.DiscoverHelper(cmd.Context())

	return detection{
		arch:     source.DetectPlatformFamily(),
		helper:   helper,
		found:    found,
		fallback: cfg.Platform.FallbackHelper,
		pkg:      cfg.AUR.Package,
		osRel:    cfg.Platform.OSReleasePath,
		timeout:  cfg.Platform.ProbeTimeout.ToDuration(),
	}
}

// renderDetection lays out the detection as a two-column table.
func renderDetection(d detection, theme color.Theme) string {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{"Property", "Value"})

	family := theme.Fail.Render("not Arch Linux")
	if d.arch {
		family = theme.UpToDate.Render("Arch Linux")
	}

	helper := theme.Muted.Render(fmt.Sprintf("none (fallback: %s)", d.fallback))
	if d.found {
		helper = theme.Version.Render(d.helper)
	}

	rows := [][]string{
		{"Platform family", family},
		{"os-release", d.osRel},
		{"AUR helper", helper},
		{"Probe timeout", durafmt.Parse(d.timeout).LimitFirstN(probeTimeoutUnits).String()},
		{"Package", d.pkg},
		{"Upgrade command", theme.Command.Render(d.command())},
	}

	for _, row := range rows {
		_ = t.Append(row)
	}

	_ = t.Render()

	return strings.TrimRight(buf.String(), "\n")
}
