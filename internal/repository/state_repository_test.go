package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flock needs real paths, so these tests run on the OS filesystem.
func newStateRepo(t *testing.T) StateRepository {
	t.Helper()
	return NewJSONStateRepository(afero.NewOsFs(), filepath.Join(t.TempDir(), "state"))
}

func sampleRecord(sessionID string) *domain.RunRecord {
	return &domain.RunRecord{
		SessionID:       sessionID,
		PreviousVersion: "1.2.3",
		NewVersion:      "1.2.4",
		Tag:             "v1.2.4",
		Commands:        []string{"git add version.txt", "git tag v1.2.4"},
		FinishedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestJSONStateRepository_SaveAndLoad(t *testing.T) {
	t.Run("Should round-trip a run record", func(t *testing.T) {
		repo := newStateRepo(t)
		ctx := context.Background()
		record := sampleRecord("session-1")
		require.NoError(t, repo.Save(ctx, record))
		loaded, err := repo.Load(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, record, loaded)
	})
	t.Run("Should return error for an unknown session", func(t *testing.T) {
		repo := newStateRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, sampleRecord("session-1")))
		loaded, err := repo.Load(ctx, "missing")
		assert.Error(t, err)
		assert.Nil(t, loaded)
		assert.Contains(t, err.Error(), "not found")
	})
	t.Run("Should overwrite an existing record", func(t *testing.T) {
		repo := newStateRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, sampleRecord("session-1")))
		updated := sampleRecord("session-1")
		updated.NewVersion = "1.3.0"
		require.NoError(t, repo.Save(ctx, updated))
		loaded, err := repo.Load(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", loaded.NewVersion)
	})
}

func TestJSONStateRepository_LoadLatest(t *testing.T) {
	t.Run("Should return the most recently saved record", func(t *testing.T) {
		repo := newStateRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, sampleRecord("session-1")))
		second := sampleRecord("session-2")
		second.NewVersion = "2.0.0"
		require.NoError(t, repo.Save(ctx, second))
		loaded, err := repo.LoadLatest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "session-2", loaded.SessionID)
		assert.Equal(t, "2.0.0", loaded.NewVersion)
	})
	t.Run("Should return error when nothing was saved", func(t *testing.T) {
		repo := newStateRepo(t)
		loaded, err := repo.LoadLatest(context.Background())
		assert.Error(t, err)
		assert.Nil(t, loaded)
	})
}
