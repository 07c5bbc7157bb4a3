// Package aur checks the Arch User Repository for newer package versions.
package aur

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-skalski/aurcheck/internal/exec"
	"github.com/smykla-skalski/aurcheck/internal/platform"
	"github.com/smykla-skalski/aurcheck/internal/version"
	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/logger"
	"github.com/smykla-skalski/aurcheck/pkg/update"
)

const (
	// SourceTag identifies results produced by this channel.
	SourceTag = "arch-aur"

	rpcInfoPath  = "/rpc/v5/info/"
	packagesPath = "/packages/"

	// maxResponseBytes caps the RPC body read; info replies are a few KiB.
	maxResponseBytes = 4 << 20
)

// Client queries the AUR RPC for the configured package. It holds no mutable
// state, so a single Client may serve concurrent queries.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	pkg            string
	userAgent      string
	fallbackHelper string
	prober         platform.Capabilities
	log            *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for RPC requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithProber replaces the platform prober used for helper discovery.
func WithProber(p platform.Capabilities) Option {
	return func(c *Client) {
		c.prober = p
	}
}

// WithLogger sets the logger for query diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client from cfg.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: cfg.AUR.Timeout.ToDuration()},
		baseURL:        strings.TrimRight(cfg.AUR.BaseURL, "/"),
		pkg:            cfg.AUR.Package,
		userAgent:      cfg.AUR.UserAgent,
		fallbackHelper: cfg.Platform.FallbackHelper,
		log:            logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.prober == nil {
		c.prober = platform.NewProber(
			exec.NewCommandRunner(cfg.Platform.ProbeTimeout.ToDuration()),
			platform.WithOSReleasePath(cfg.Platform.OSReleasePath),
			platform.WithHelpers(cfg.Platform.Helpers),
			platform.WithProbeTimeout(cfg.Platform.ProbeTimeout.ToDuration()),
			platform.WithLogger(c.log),
		)
	}

	return c
}

// DetectPlatformFamily reports whether the host is an Arch Linux system.
func (c *Client) DetectPlatformFamily() bool {
	return c.prober.DetectFamily()
}

// DiscoverHelper returns the first installed AUR helper.
func (c *Client) DiscoverHelper(ctx context.Context) (string, bool) {
	return c.prober.DiscoverHelper(ctx)
}

// PackageURL returns the AUR web page of the package.
func (c *Client) PackageURL() string {
	return c.baseURL + packagesPath + url.PathEscape(c.pkg)
}

// Query looks up the package and compares the published version with
// currentVersion. Revision suffixes are ignored for the comparison but
// LatestVersion keeps the raw remote string.
//
// Errors match ErrNetwork, ErrAPI (with *APIError), ErrParse or ErrNotFound.
// Nothing is retried.
func (c *Client) Query(ctx context.Context, currentVersion string) (*update.Info, error) {
	var remote, helper string

	// Helper discovery overlaps the request and is cancelled if it fails.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := c.fetchVersion(gctx)
		remote = v

		return err
	})

	g.Go(func() error {
		if h, ok := c.prober.DiscoverHelper(gctx); ok {
			helper = h
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if helper == "" {
		helper = c.fallbackHelper
	}

	hasUpdate := version.Newer(version.Clean(currentVersion), version.Clean(remote))

	notes := upToDateNotes(currentVersion)
	if hasUpdate {
		notes = updateNotes(currentVersion, remote, UpgradeCommand(helper, c.pkg))
	}

	c.log.Info("AUR check result",
		"has_update", hasUpdate,
		"source", SourceTag,
		"latest_version", remote,
	)

	return &update.Info{
		HasUpdate:      hasUpdate,
		LatestVersion:  remote,
		CurrentVersion: currentVersion,
		DownloadURL:    update.StringPtr(c.PackageURL()),
		ReleaseNotes:   update.StringPtr(notes),
		Source:         update.StringPtr(SourceTag),
	}, nil
}

// fetchVersion performs the RPC call and returns the first result's version.
//
//nolint:gosec // G107: URL is built from configuration, not user input
func (c *Client) fetchVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.infoURL(), nil)
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "AUR query failed"), ErrNetwork)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on response body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.WithStack(&APIError{StatusCode: resp.StatusCode})
	}

	var body infoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return "", errors.Mark(errors.Wrap(err, "parsing AUR response"), ErrParse)
	}

	if body.count() == 0 {
		return "", errors.Mark(errors.Newf("package %s not found in AUR", c.pkg), ErrNotFound)
	}

	return body.firstVersion(), nil
}

func (c *Client) infoURL() string {
	return c.baseURL + rpcInfoPath + url.PathEscape(c.pkg)
}
