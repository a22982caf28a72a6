package domain

import "sort"

// FileUpdate is a pending rewrite of a single file.
type FileUpdate struct {
	Path    string
	Content string
}

// SortUpdates orders updates by path so application order is deterministic.
func SortUpdates(updates []FileUpdate) {
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].Path < updates[j].Path
	})
}
