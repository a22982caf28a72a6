package usecase

import (
	"context"

	"github.com/fistbump/fistbump/internal/domain"
)

// ComputeBumpUseCase derives the new version from the current one and the
// requested bump kind.

type ComputeBumpUseCase struct {
	PrereleaseLabel string
}

// Execute runs the use case. It returns nil when no bump was requested.
func (uc *ComputeBumpUseCase) Execute(
	_ context.Context,
	current *domain.Version,
	req domain.BumpRequest,
) (*domain.Version, error) {
	switch {
	case req.Major:
		return current.BumpMajor(), nil
	case req.Minor:
		return current.BumpMinor(), nil
	case req.Patch:
		return current.BumpPatch(), nil
	case req.Prerelease:
		return current.BumpPrerelease(uc.PrereleaseLabel)
	case req.SetVersion != "":
		return current.WithValue(req.SetVersion)
	default:
		return nil, nil
	}
}
