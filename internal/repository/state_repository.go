package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	// StateFilePermissions defines the permissions for run-record files
	StateFilePermissions = 0600
	// StateDirPermissions defines the permissions for the state directory
	StateDirPermissions = 0700
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// StateRepository persists run records.
type StateRepository interface {
	Save(ctx context.Context, record *domain.RunRecord) error
	Load(ctx context.Context, sessionID string) (*domain.RunRecord, error)
	LoadLatest(ctx context.Context) (*domain.RunRecord, error)
}

// JSONStateRepository implements StateRepository using JSON files under a
// state directory, guarded by advisory file locks so concurrent invocations
// do not clobber each other.
type JSONStateRepository struct {
	fs       afero.Fs
	stateDir string
}

// NewJSONStateRepository creates a new JSON-based state repository.
func NewJSONStateRepository(fs afero.Fs, stateDir string) StateRepository {
	if stateDir == "" {
		stateDir = ".fistbump-state"
	}
	return &JSONStateRepository{
		fs:       fs,
		stateDir: stateDir,
	}
}

// Save writes the run record atomically and updates the latest pointer.
func (r *JSONStateRepository) Save(ctx context.Context, record *domain.RunRecord) error {
	if err := r.fs.MkdirAll(r.stateDir, StateDirPermissions); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}
	lock := flock.New(r.lockFilename(record.SessionID))
	locked, err := r.acquireLock(ctx, lock.TryLock)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock within timeout")
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to unlock state file: %v\n", unlockErr)
		}
	}()
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}
	filename := r.recordFilename(record.SessionID)
	tempFile := filename + ".tmp"
	if err := afero.WriteFile(r.fs, tempFile, data, StateFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp record file: %w", err)
	}
	if err := r.fs.Rename(tempFile, filename); err != nil {
		if removeErr := r.fs.Remove(tempFile); removeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove temp file: %v\n", removeErr)
		}
		return fmt.Errorf("failed to rename record file: %w", err)
	}
	if err := afero.WriteFile(r.fs, r.latestPointer(), []byte(record.SessionID), StateFilePermissions); err != nil {
		return fmt.Errorf("failed to update latest pointer: %w", err)
	}
	return nil
}

// Load retrieves a run record by session ID.
func (r *JSONStateRepository) Load(ctx context.Context, sessionID string) (*domain.RunRecord, error) {
	lock := flock.New(r.lockFilename(sessionID))
	locked, err := r.acquireLock(ctx, lock.TryRLock)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire shared lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire shared lock within timeout")
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to unlock state file: %v\n", unlockErr)
		}
	}()
	data, err := afero.ReadFile(r.fs, r.recordFilename(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run record not found for session %s", sessionID)
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run record: %w", err)
	}
	return &record, nil
}

// LoadLatest retrieves the most recently saved run record.
func (r *JSONStateRepository) LoadLatest(ctx context.Context) (*domain.RunRecord, error) {
	data, err := afero.ReadFile(r.fs, r.latestPointer())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no run record found")
		}
		return nil, fmt.Errorf("failed to read latest pointer: %w", err)
	}
	return r.Load(ctx, string(data))
}

// acquireLock polls a flock try function until it succeeds or the timeout
// context expires.
func (r *JSONStateRepository) acquireLock(ctx context.Context, try func() (bool, error)) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		locked, err := try()
		if err != nil {
			return false, err
		}
		if locked {
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *JSONStateRepository) recordFilename(sessionID string) string {
	return filepath.Join(r.stateDir, fmt.Sprintf("run-%s.json", sessionID))
}

func (r *JSONStateRepository) lockFilename(sessionID string) string {
	return filepath.Join(r.stateDir, fmt.Sprintf(".run-%s.lock", sessionID))
}

func (r *JSONStateRepository) latestPointer() string {
	return filepath.Join(r.stateDir, "latest.txt")
}
