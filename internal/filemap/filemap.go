// Package filemap provides the lookup table produced by an asset processing
// run: a write-once mapping from original asset paths to their fingerprinted
// counterparts, together with its JSON manifest form and the runtime loader
// used by serving applications.
package filemap

import (
	"fmt"
	"maps"
	"strings"
)

// FileMap maps original asset paths to fingerprinted paths.
//
// Keys are exact strings: "./dist/x.svg" and "dist/x.svg" are distinct
// entries. A FileMap is built by a single processing run and is never
// mutated after it has been loaded in a consuming process, so an unmodified
// map may be shared across concurrent readers.
type FileMap struct {
	entries map[string]string
	baseDir string
}

// New creates an empty FileMap rooted at baseDir, the output directory used
// to compute relative lookup results.
func New(baseDir string) *FileMap {
	return &FileMap{
		entries: make(map[string]string),
		baseDir: baseDir,
	}
}

// Add inserts a mapping from an original path to its fingerprinted path.
// Returns ErrKeyExists if the original path is already present; existing
// entries are never overwritten.
func (m *FileMap) Add(original, fingerprinted string) error {
	if _, ok := m.entries[original]; ok {
		return fmt.Errorf("%w: %s", ErrKeyExists, original)
	}
	m.entries[original] = fingerprinted
	return nil
}

// Get returns the fingerprinted path for original, stripped of the base
// directory prefix. If the stored path is "./prod/test.HASH.svg" and the
// base directory is "./prod", Get returns "/test.HASH.svg". For the full
// stored path, see GetFullPath.
func (m *FileMap) Get(original string) (string, bool) {
	v, ok := m.entries[original]
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(v, m.baseDir), true
}

// GetFullPath returns the fingerprinted path for original exactly as stored,
// including the base directory.
func (m *FileMap) GetFullPath(original string) (string, bool) {
	v, ok := m.entries[original]
	return v, ok
}

// BaseDir returns the output directory root recorded for this map.
func (m *FileMap) BaseDir() string {
	return m.baseDir
}

// Len returns the number of entries in the map.
func (m *FileMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the underlying mapping.
func (m *FileMap) Entries() map[string]string {
	return maps.Clone(m.entries)
}

// Equal reports whether two maps carry the same entries and base directory.
func (m *FileMap) Equal(other *FileMap) bool {
	if other == nil {
		return false
	}
	return m.baseDir == other.baseDir && maps.Equal(m.entries, other.entries)
}
