// Package version orders version strings published by package channels.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// revisionSeparator splits a channel version into its upstream part and the
// package revision (pkgrel) appended by the channel.
const revisionSeparator = "-"

// Clean returns the version without its package revision suffix.
// Only the first separator counts: "1.2.0-1-beta" becomes "1.2.0".
func Clean(v string) string {
	before, _, _ := strings.Cut(v, revisionSeparator)

	return before
}

// Newer reports whether latest is strictly newer than current.
func Newer(current, latest string) bool {
	return Compare(latest, current) > 0
}

// Compare returns -1, 0 or 1 when a is older than, equal to, or newer than b.
//
// Versions are split on dots and compared segment by segment. Missing or
// empty segments count as "0", so "1.2" equals "1.2.0". Numeric segments
// compare by value. Non-numeric segments compare lexicographically and sort
// below any numeric segment. A leading "v" is ignored and an empty string is
// the version "0".
func Compare(a, b string) int {
	a, b = normalize(a), normalize(b)

	if c, ok := compareStrict(a, b); ok {
		return c
	}

	return compareSegments(strings.Split(a, "."), strings.Split(b, "."))
}

func normalize(v string) string {
	v = strings.TrimSpace(v)

	if v != "" && (v[0] == 'v' || v[0] == 'V') {
		v = v[1:]
	}

	if v == "" {
		return "0"
	}

	return v
}

// compareStrict handles the common MAJOR.MINOR.PATCH case. It only applies
// when both strings are plain release versions, where semver ordering and
// segment ordering agree.
func compareStrict(a, b string) (int, bool) {
	va, err := semver.StrictNewVersion(a)
	if err != nil || va.Prerelease() != "" || va.Metadata() != "" {
		return 0, false
	}

	vb, err := semver.StrictNewVersion(b)
	if err != nil || vb.Prerelease() != "" || vb.Metadata() != "" {
		return 0, false
	}

	return va.Compare(vb), true
}

func compareSegments(a, b []string) int {
	for i := range max(len(a), len(b)) {
		if c := compareSegment(segmentAt(a, i), segmentAt(b, i)); c != 0 {
			return c
		}
	}

	return 0
}

func segmentAt(segments []string, i int) string {
	if i >= len(segments) || segments[i] == "" {
		return "0"
	}

	return segments[i]
}

func compareSegment(x, y string) int {
	xNum, yNum := isNumeric(x), isNumeric(y)

	switch {
	case xNum && yNum:
		return compareNumeric(x, y)
	case xNum:
		return 1
	case yNum:
		return -1
	default:
		return strings.Compare(x, y)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// compareNumeric compares digit strings of any length without parsing them.
func compareNumeric(x, y string) int {
	x, y = trimZeros(x), trimZeros(y)

	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}

		return -1
	}

	return strings.Compare(x, y)
}

func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}

	return s
}
