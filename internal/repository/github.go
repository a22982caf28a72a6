package repository

import "context"

// GithubRepository creates releases for pushed tags.

type GithubRepository interface {
	CreateRelease(ctx context.Context, tag, name, notes string) (string, error)
}
