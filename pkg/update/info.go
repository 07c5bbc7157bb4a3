// Package update defines the update check result shared with callers.
package update

import "time"

// Info is the normalized outcome of an update check against a single channel.
// Optional fields are nil when the channel does not provide them.
type Info struct {
	// HasUpdate is true when the channel publishes a newer version.
	HasUpdate bool `json:"has_update" jsonschema:"description=True when the channel publishes a newer version"`

	// LatestVersion is the version reported by the channel, unmodified.
	LatestVersion string `json:"latest_version" jsonschema:"description=Version reported by the channel including its package revision"`

	// CurrentVersion is the version supplied by the caller, unmodified.
	CurrentVersion string `json:"current_version" jsonschema:"description=Version the check was run against"`

	// DownloadURL points at the channel's package page.
	DownloadURL *string `json:"download_url" jsonschema:"nullable,description=Package page on the channel"`

	// ReleaseNotes is a human-readable summary of the check.
	ReleaseNotes *string `json:"release_notes" jsonschema:"nullable,description=Human-readable summary with upgrade instructions"`

	// PublishedAt is when the latest version was published.
	PublishedAt *time.Time `json:"published_at" jsonschema:"nullable,description=Publication time of the latest version"`

	// Source identifies the channel that produced this result.
	Source *string `json:"source" jsonschema:"nullable,description=Channel identifier,example=arch-aur"`

	// SHA256 is the checksum of the downloadable artifact.
	SHA256 *string `json:"sha256" jsonschema:"nullable,description=Artifact checksum"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
