package platform

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/aurcheck/internal/exec"
)

// DetectFamily reads the os-release file and matches the Arch identifiers.
// A missing or unreadable file means false.
func (p *Prober) DetectFamily() bool {
	data, err := os.ReadFile(p.osReleasePath)
	if err != nil {
		p.log.Debug("os-release unreadable", "path", p.osReleasePath, "error", err)

		return false
	}

	return MatchesArchFamily(string(data))
}

// DiscoverHelper runs `which` for each helper in priority order and returns
// the first one that resolves. The result is ("", false) when no helper is
// installed or when `which` itself cannot be run.
func (p *Prober) DiscoverHelper(ctx context.Context) (string, bool) {
	for _, helper := range p.helpers {
		if ctx.Err() != nil {
			return "", false
		}

		probeCtx, cancel := context.WithTimeout(ctx, p.probeTimeout)
		result := p.runner.Run(probeCtx, "which", helper)

		cancel()

		if result.Success() {
			return helper, true
		}

		if errors.Is(result.Err, exec.ErrNotStarted) {
			p.log.Debug("helper probe unavailable", "error", result.Err)

			return "", false
		}

		p.log.Debug("helper not found", "helper", helper)
	}

	return "", false
}
