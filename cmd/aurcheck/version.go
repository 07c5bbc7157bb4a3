package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

const shortCommitLength = 12

// Build information set by ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version and build information for aurcheck.",
	Run: func(cmd *cobra.Command, _ []string) {
		writeVersion(cmd.OutOrStdout(), versionShort)
	},
}

var (
	// versionRequested is set by the --version/-v flag.
	versionRequested bool
	versionShort     bool
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(
		&versionRequested,
		"version",
		"v",
		false,
		"Print version information",
	)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func checkVersionFlag() {
	if versionRequested {
		writeVersion(os.Stdout, false)
		os.Exit(0)
	}
}

func writeVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)

		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "aurcheck %s\n", version)
	fmt.Fprintf(&b, "  commit:    %s\n", buildCommit())
	fmt.Fprintf(&b, "  built:     %s\n", date)
	fmt.Fprintf(&b, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(&b, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)

	fmt.Fprint(w, b.String())
}

// buildCommit prefers the ldflags commit and falls back to VCS build info.
func buildCommit() string {
	if commit != "unknown" {
		return commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit
	}

	rev, modified := "", false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value[:min(shortCommitLength, len(setting.Value))]
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	switch {
	case rev == "":
		return commit
	case modified:
		return rev + "-dirty"
	default:
		return rev
	}
}
