package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReleaseUseCase_Execute(t *testing.T) {
	t.Run("Should pass on a clean tree with an exact tag on HEAD", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CheckReleaseUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("TagsAtHead", ctx).Return([]string{"v1.2.3"}, nil)
		ok, diagnostic, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, diagnostic)
	})
	t.Run("Should fail on a dirty tree", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CheckReleaseUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("IsClean", ctx).Return(false, nil)
		ok, diagnostic, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, diagnostic, "not clean")
	})
	t.Run("Should fail when the HEAD tag is a pre-release", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CheckReleaseUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("TagsAtHead", ctx).Return([]string{"v1.3.0-dev"}, nil)
		ok, diagnostic, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, diagnostic, "pre-release")
	})
	t.Run("Should fail when HEAD carries no version tag", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CheckReleaseUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("IsClean", ctx).Return(true, nil)
		gitRepo.On("TagsAtHead", ctx).Return([]string{"nightly"}, nil)
		ok, diagnostic, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, diagnostic, "no exact version tag")
	})
	t.Run("Should propagate gateway errors", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CheckReleaseUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("IsClean", ctx).Return(false, errors.New("git error"))
		ok, _, err := uc.Execute(ctx)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
