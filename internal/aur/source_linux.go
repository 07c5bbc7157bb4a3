package aur

import "github.com/smykla-skalski/aurcheck/pkg/config"

func newSource(cfg *config.Config, opts ...Option) Source {
	return NewClient(cfg, opts...)
}
