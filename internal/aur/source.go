package aur

import (
	"context"

	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/update"
)

// Source is the AUR update channel as seen by callers that merge several
// channels. Builds for Linux get the Client; other builds get a stub that
// probes nothing and fails every query with ErrUnsupportedPlatform.
type Source interface {
	// DetectPlatformFamily reports whether the host is an Arch Linux system.
	DetectPlatformFamily() bool

	// DiscoverHelper returns the first installed AUR helper.
	DiscoverHelper(ctx context.Context) (string, bool)

	// Query checks the channel for a version newer than currentVersion.
	Query(ctx context.Context, currentVersion string) (*update.Info, error)
}

// New returns the Source for the current build.
func New(cfg *config.Config, opts ...Option) Source {
	return newSource(cfg, opts...)
}

var _ Source = (*Client)(nil)
