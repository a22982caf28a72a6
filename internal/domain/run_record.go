package domain

import "time"

// RunRecord describes one completed bump run. It is persisted so automation
// can inspect what the last invocation did.
type RunRecord struct {
	SessionID       string    `json:"session_id"`
	PreviousVersion string    `json:"previous_version"`
	NewVersion      string    `json:"new_version"`
	Tag             string    `json:"tag,omitempty"`
	Prerelease      bool      `json:"prerelease"`
	DryRun          bool      `json:"dry_run"`
	Commands        []string  `json:"commands"`
	FinishedAt      time.Time `json:"finished_at"`
}
