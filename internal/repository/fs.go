package repository

import "github.com/spf13/afero"

// FileSystemRepository defines the interface for filesystem operations. The
// update set is applied through it, so tests can run against a memory fs.

type FileSystemRepository interface {
	afero.Fs
}
