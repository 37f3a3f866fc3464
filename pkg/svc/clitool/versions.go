package clitool

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RemoveVersionPrefix normalizes a release tag by stripping a leading "v".
// Tags without the prefix pass through unchanged.
func RemoveVersionPrefix(version string) string {
	return strings.TrimPrefix(version, "v")
}

// versionsEqual compares two normalized version strings semantically, falling
// back to string equality when either does not parse as semver.
func versionsEqual(a, b string) bool {
	left, errLeft := semver.NewVersion(a)
	right, errRight := semver.NewVersion(b)

	if errLeft != nil || errRight != nil {
		return a == b
	}

	return left.Equal(right)
}
