//go:build !linux

package platform

import "context"

// DetectFamily is always false outside Linux.
func (*Prober) DetectFamily() bool {
	return false
}

// DiscoverHelper never finds a helper outside Linux.
func (*Prober) DiscoverHelper(context.Context) (string, bool) {
	return "", false
}
