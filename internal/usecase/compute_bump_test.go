package usecase

import (
	"context"
	"testing"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBumpUseCase_Execute(t *testing.T) {
	uc := &ComputeBumpUseCase{PrereleaseLabel: "dev"}
	ctx := context.Background()
	current, err := domain.ParseTag("v1.2.3")
	require.NoError(t, err)

	t.Run("Should bump major", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{Major: true})
		require.NoError(t, err)
		assert.Equal(t, "v2.0.0", version.TagName())
	})
	t.Run("Should bump minor", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{Minor: true})
		require.NoError(t, err)
		assert.Equal(t, "v1.3.0", version.TagName())
	})
	t.Run("Should bump patch", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{Patch: true})
		require.NoError(t, err)
		assert.Equal(t, "v1.2.4", version.TagName())
	})
	t.Run("Should bump minor and attach label for prerelease", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{Prerelease: true})
		require.NoError(t, err)
		assert.Equal(t, "1.3.0-dev", version.String())
		assert.True(t, version.IsPrerelease())
	})
	t.Run("Should set explicit version keeping the prefix", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{SetVersion: "4.5.6"})
		require.NoError(t, err)
		assert.Equal(t, "v4.5.6", version.TagName())
	})
	t.Run("Should return error for unparseable explicit version", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{SetVersion: "nope"})
		assert.Error(t, err)
		assert.Nil(t, version)
	})
	t.Run("Should return nil when nothing was requested", func(t *testing.T) {
		version, err := uc.Execute(ctx, current, domain.BumpRequest{})
		require.NoError(t, err)
		assert.Nil(t, version)
	})
}
