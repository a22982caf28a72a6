package orchestrator

import (
	"os"
	"strconv"
	"time"
)

// Retry settings for the GitHub release call. Local git and file operations
// are never retried.
var (
	// DefaultRetryCount is the number of retries for network operations
	DefaultRetryCount = uint64(getRetryCountOrDefault("FISTBUMP_RETRY_COUNT", 3))
	// DefaultRetryDelay is the initial delay for exponential backoff
	DefaultRetryDelay = getDurationOrDefault("FISTBUMP_RETRY_DELAY", 1*time.Second)
)

func getDurationOrDefault(envVar string, def time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	return def
}

func getRetryCountOrDefault(envVar string, def int) int {
	if env := os.Getenv(envVar); env != "" {
		if count, err := strconv.Atoi(env); err == nil {
			return count
		}
	}
	return def
}

// File permission constants
const (
	// FilePermissionsReadWrite is the standard permission for created files
	FilePermissionsReadWrite = 0644
)
