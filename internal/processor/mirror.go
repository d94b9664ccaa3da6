package processor

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/isseis/go-cache-buster/internal/common"
)

const outputDirPermissions = 0o755

// prepareOutput deletes the result directory if it exists, recreates it
// empty, and then recreates every directory found under source at the
// mirrored relative location. File copies assume their parent directory
// exists, so this must complete before any file is written.
//
// The operation is destructive and idempotent: running it twice yields the
// same empty directory skeleton both times.
func prepareOutput(fsys common.FileSystem, source, result string, followLinks bool) error {
	if err := fsys.RemoveAll(result); err != nil {
		return fmt.Errorf("failed to remove result directory %s: %w", result, err)
	}
	if err := fsys.MkdirAll(result, outputDirPermissions); err != nil {
		return fmt.Errorf("failed to create result directory %s: %w", result, err)
	}

	return walkEntries(fsys, source, followLinks, func(path string, info fs.FileInfo) error {
		if !info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative location of %s: %w", path, err)
		}
		if err := fsys.MkdirAll(filepath.Join(result, rel), outputDirPermissions); err != nil {
			return fmt.Errorf("failed to mirror directory %s: %w", rel, err)
		}
		return nil
	})
}
