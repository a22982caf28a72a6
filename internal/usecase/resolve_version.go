package usecase

import (
	"context"
	"fmt"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/fistbump/fistbump/internal/repository"
)

// ResolveVersionUseCase reads the current version from the latest tag.

type ResolveVersionUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case. It returns domain.ErrNoTagFound when the
// repository has no tags yet.
func (uc *ResolveVersionUseCase) Execute(ctx context.Context) (*domain.Version, error) {
	latestTag, err := uc.GitRepo.LatestTag(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest tag: %w", err)
	}
	if latestTag == "" {
		return nil, domain.ErrNoTagFound
	}
	version, err := domain.ParseTag(latestTag)
	if err != nil {
		return nil, err
	}
	return version, nil
}
