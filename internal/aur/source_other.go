//go:build !linux

package aur

import (
	"context"

	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/update"
)

type unsupported struct{}

func newSource(*config.Config, ...Option) Source {
	return unsupported{}
}

func (unsupported) DetectPlatformFamily() bool {
	return false
}

func (unsupported) DiscoverHelper(context.Context) (string, bool) {
	return "", false
}

func (unsupported) Query(context.Context, string) (*update.Info, error) {
	return nil, ErrUnsupportedPlatform
}
