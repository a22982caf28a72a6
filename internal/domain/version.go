package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version and remembers whether the tag it was parsed
// from carried a literal "v" prefix.
type Version struct {
	ver    *semver.Version
	prefix string
}

// ParseTag parses a git tag into a Version. A leading "v" is captured as the
// prefix; the remainder is parsed tolerantly, so "v1" and "1.2" are accepted
// with the missing parts defaulting to zero.
func ParseTag(tag string) (*Version, error) {
	prefix := ""
	rest := tag
	if strings.HasPrefix(tag, "v") {
		prefix = "v"
		rest = tag[1:]
	}
	v, err := semver.NewVersion(rest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", tag, err)
	}
	return &Version{ver: v, prefix: prefix}, nil
}

// BumpMajor increments the major version, zeroing minor and patch and
// clearing any prerelease label.
func (v *Version) BumpMajor() *Version {
	nv := v.ver.IncMajor()
	return &Version{ver: &nv, prefix: v.prefix}
}

// BumpMinor increments the minor version, zeroing patch and clearing any
// prerelease label.
func (v *Version) BumpMinor() *Version {
	nv := v.ver.IncMinor()
	return &Version{ver: &nv, prefix: v.prefix}
}

// BumpPatch increments the patch version. When a prerelease label is present
// the label is dropped without incrementing patch, since 1.2.3-dev precedes
// 1.2.3.
func (v *Version) BumpPatch() *Version {
	nv := v.ver.IncPatch()
	return &Version{ver: &nv, prefix: v.prefix}
}

// BumpPrerelease bumps the minor version and attaches the given prerelease
// label.
func (v *Version) BumpPrerelease(label string) (*Version, error) {
	nv := v.ver.IncMinor()
	nv, err := nv.SetPrerelease(label)
	if err != nil {
		return nil, fmt.Errorf("failed to set prerelease label %q: %w", label, err)
	}
	return &Version{ver: &nv, prefix: v.prefix}, nil
}

// WithValue returns a Version holding the explicitly requested value while
// keeping the receiver's tag prefix.
func (v *Version) WithValue(value string) (*Version, error) {
	parsed, err := ParseTag(value)
	if err != nil {
		return nil, err
	}
	return &Version{ver: parsed.ver, prefix: v.prefix}, nil
}

// IsPrerelease reports whether the version carries a prerelease label.
func (v *Version) IsPrerelease() bool {
	return v.ver.Prerelease() != ""
}

// Compare compares two versions, ignoring prefixes.
func (v *Version) Compare(other *Version) int {
	return v.ver.Compare(other.ver)
}

// String returns the normalized version without the tag prefix.
func (v *Version) String() string {
	return v.ver.String()
}

// TagName returns the version with the tag prefix re-applied.
func (v *Version) TagName() string {
	return v.prefix + v.ver.String()
}
