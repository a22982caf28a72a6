package repository

import "context"

// GitRepository is the gateway to the version-control system. Each method
// answers one of the queries or performs one of the mutations the bump
// workflow needs; the invocation mechanism behind it is an implementation
// detail.
type GitRepository interface {
	// LatestTag returns the most recently created reachable tag, or "" when
	// the repository has no tags.
	LatestTag(ctx context.Context) (string, error)
	// TagsAtHead returns the names of all tags pointing at the current commit.
	TagsAtHead(ctx context.Context) ([]string, error)
	// IsClean reports whether tracked files match the last committed
	// snapshot. Untracked files do not dirty the tree.
	IsClean(ctx context.Context) (bool, error)
	// IsTracked reports whether the given path is tracked.
	IsTracked(ctx context.Context, path string) (bool, error)
	// StageFile stages a single file.
	StageFile(ctx context.Context, path string) error
	// Commit creates a commit from the staged changes.
	Commit(ctx context.Context, message string) error
	// CreateTag creates a lightweight tag on the current commit.
	CreateTag(ctx context.Context, tag string) error
	// PushTag pushes a tag to the origin remote.
	PushTag(ctx context.Context, tag string) error
}
