package processor

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/isseis/go-cache-buster/internal/common"
)

// walkFunc is called for every entry under the walk root, excluding the root
// itself. For symbolic links the info describes the link target.
type walkFunc func(path string, info fs.FileInfo) error

// walkEntries visits every entry under root depth-first using an explicit
// stack. Produced paths preserve the spelling of root: walking "./dist"
// yields "./dist/log-out.svg", while walking "dist" yields "dist/log-out.svg".
// File map keys depend on this, so paths are joined without cleaning.
//
// Symbolic links are resolved to their targets. Links to directories are
// descended into only when followLinks is set; links to files are reported
// like regular files either way.
func walkEntries(fsys common.FileSystem, root string, followLinks bool, fn walkFunc) error {
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			path := joinPreserving(dir, entry.Name())

			info, err := entry.Info()
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			if info.Mode()&os.ModeSymlink != 0 {
				target, err := fsys.Stat(path)
				if err != nil {
					return fmt.Errorf("failed to resolve symlink %s: %w", path, err)
				}
				if target.IsDir() && !followLinks {
					continue
				}
				info = target
			}

			if err := fn(path, info); err != nil {
				return err
			}
			if info.IsDir() {
				stack = append(stack, path)
			}
		}
	}
	return nil
}

// joinPreserving joins a directory and an entry name without cleaning the
// directory spelling.
func joinPreserving(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

// joinLiteral joins path segments with the separator, again without
// cleaning. Empty segments are skipped.
func joinLiteral(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), string(os.PathSeparator)) {
			b.WriteByte(os.PathSeparator)
		}
		b.WriteString(part)
	}
	return b.String()
}
