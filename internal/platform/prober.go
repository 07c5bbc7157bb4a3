// Package platform probes the host for Arch Linux and installed AUR helpers.
package platform

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/smykla-skalski/aurcheck/internal/exec"
	"github.com/smykla-skalski/aurcheck/pkg/logger"
)

const (
	// DefaultOSReleasePath is the standard OS descriptor location.
	DefaultOSReleasePath = "/etc/os-release"

	// DefaultProbeTimeout bounds each helper lookup.
	DefaultProbeTimeout = 2 * time.Second
)

// archTokens identify Arch Linux and its derivatives in os-release content.
var archTokens = []string{"ID=arch", "ID_LIKE=arch", "ID=archlinux"}

// DefaultHelpers returns the AUR helpers in probe priority order.
func DefaultHelpers() []string {
	return []string{"yay", "paru", "pamac", "trizen", "pacaur"}
}

// Capabilities reports what the host offers for AUR updates.
type Capabilities interface {
	// DetectFamily reports whether the host belongs to the Arch Linux family.
	DetectFamily() bool

	// DiscoverHelper returns the first installed AUR helper.
	DiscoverHelper(ctx context.Context) (string, bool)
}

// Prober implements Capabilities. It keeps no state between calls; every
// call probes the host again.
type Prober struct {
	runner        exec.CommandRunner
	osReleasePath string
	helpers       []string
	probeTimeout  time.Duration
	log           *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithOSReleasePath overrides the os-release location.
func WithOSReleasePath(path string) Option {
	return func(p *Prober) {
		p.osReleasePath = path
	}
}

// WithHelpers overrides the helper candidates and their priority.
func WithHelpers(helpers []string) Option {
	return func(p *Prober) {
		p.helpers = helpers
	}
}

// WithProbeTimeout overrides the per-helper lookup timeout.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.probeTimeout = timeout
	}
}

// WithLogger sets the logger for probe diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Prober) {
		p.log = log
	}
}

// NewProber creates a Prober that looks up helpers through runner.
func NewProber(runner exec.CommandRunner, opts ...Option) *Prober {
	p := &Prober{
		runner:        runner,
		osReleasePath: DefaultOSReleasePath,
		helpers:       DefaultHelpers(),
		probeTimeout:  DefaultProbeTimeout,
		log:           logger.Discard(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// MatchesArchFamily reports whether os-release content names Arch Linux,
// either as the distribution ID or as the ID it derives from.
func MatchesArchFamily(osRelease string) bool {
	for _, token := range archTokens {
		if strings.Contains(osRelease, token) {
			return true
		}
	}

	return false
}

var _ Capabilities = (*Prober)(nil)
