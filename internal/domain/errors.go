package domain

import "errors"

var (
	// ErrNoTagFound indicates the repository has no version tag to start from.
	ErrNoTagFound = errors.New("no tags found")
	// ErrCheckFailed indicates the --check release gate did not pass. It maps
	// to a distinct non-zero exit code so CI can rely on it.
	ErrCheckFailed = errors.New("release check failed")
)
