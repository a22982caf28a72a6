package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/fistbump/fistbump/internal/repository"
	"github.com/spf13/afero"
)

// manifestVersionRegex matches the single version assignment in the manifest:
// the literal key, optional whitespace around "=", and a double-quoted value
// starting with a digit.
var manifestVersionRegex = regexp.MustCompile(`version\s*=\s*"\d[^"]*"`)

// RewriteManifestVersion replaces the version assignment in the manifest
// content with the given version. The rest of the content is left untouched.
func RewriteManifestVersion(content, version string) string {
	return manifestVersionRegex.ReplaceAllString(content, fmt.Sprintf("version = %q", version))
}

// CollectUpdatesUseCase builds the set of pending file rewrites for a new
// version: every version-marker file under the tree plus the root manifest.

type CollectUpdatesUseCase struct {
	FsRepo          repository.FileSystemRepository
	ManifestFile    string
	VersionFileName string
	SkipDirs        []string
}

// Execute runs the use case. The returned updates are ordered by path.
func (uc *CollectUpdatesUseCase) Execute(_ context.Context, newVersion string) ([]domain.FileUpdate, error) {
	var updates []domain.FileUpdate
	err := afero.Walk(uc.FsRepo, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if uc.skipDir(info.Name()) && path != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == uc.VersionFileName {
			updates = append(updates, domain.FileUpdate{
				Path:    normalizePath(path),
				Content: newVersion,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan for %s files: %w", uc.VersionFileName, err)
	}
	manifest, err := uc.manifestUpdate(newVersion)
	if err != nil {
		return nil, err
	}
	if manifest != nil {
		updates = append(updates, *manifest)
	}
	domain.SortUpdates(updates)
	return updates, nil
}

// manifestUpdate returns the manifest rewrite, or nil when the manifest is
// absent or its content would not change.
func (uc *CollectUpdatesUseCase) manifestUpdate(newVersion string) (*domain.FileUpdate, error) {
	exists, err := afero.Exists(uc.FsRepo, uc.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", uc.ManifestFile, err)
	}
	if !exists {
		return nil, nil
	}
	data, err := afero.ReadFile(uc.FsRepo, uc.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uc.ManifestFile, err)
	}
	content := string(data)
	newContent := RewriteManifestVersion(content, newVersion)
	if newContent == content {
		return nil, nil
	}
	return &domain.FileUpdate{Path: uc.ManifestFile, Content: newContent}, nil
}

func (uc *CollectUpdatesUseCase) skipDir(name string) bool {
	if name == ".git" {
		return true
	}
	for _, d := range uc.SkipDirs {
		if name == d {
			return true
		}
	}
	return false
}

func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
