package orchestrator

import (
	"fmt"
	"regexp"
)

// versionRegex matches semantic versions with optional 'v' prefix. Minor and
// patch may be omitted; they default to zero when parsed.
var versionRegex = regexp.MustCompile(`^v?\d+(\.\d+){0,2}(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

// ValidateVersion validates a semantic version string ahead of parsing, so
// the user gets a crisp message for a malformed --set-version value.
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if !versionRegex.MatchString(version) {
		return fmt.Errorf("invalid version format: %s (expected: v1.2.3 or 1.2.3)", version)
	}
	return nil
}
