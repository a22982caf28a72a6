package usecase

import (
	"context"
	"fmt"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/fistbump/fistbump/internal/repository"
)

// CheckReleaseUseCase implements the pre-publish gate: the working tree must
// be clean and the current commit must carry an exact, non-prerelease version
// tag.

type CheckReleaseUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case. A failed gate returns a diagnostic message and
// ok=false; err is reserved for failures of the underlying queries.
func (uc *CheckReleaseUseCase) Execute(ctx context.Context) (ok bool, diagnostic string, err error) {
	clean, err := uc.GitRepo.IsClean(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		return false, "Working directory is not clean", nil
	}
	tags, err := uc.GitRepo.TagsAtHead(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to list tags at HEAD: %w", err)
	}
	for _, tag := range tags {
		version, err := domain.ParseTag(tag)
		if err != nil {
			continue
		}
		if version.IsPrerelease() {
			return false, fmt.Sprintf("Tag %s on current commit is a pre-release", tag), nil
		}
		return true, "", nil
	}
	return false, "Current commit carries no exact version tag", nil
}
