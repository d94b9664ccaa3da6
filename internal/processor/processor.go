// Package processor implements the build-time file processing pass: it
// mirrors the source directory structure into the result directory, walks
// every file, fingerprints qualifying files by embedding a content hash in
// their filename, and records the original-to-fingerprinted mapping in a
// file map.
package processor

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/isseis/go-cache-buster/internal/common"
	"github.com/isseis/go-cache-buster/internal/filemap"
	"github.com/isseis/go-cache-buster/internal/hashing"
	"github.com/isseis/go-cache-buster/internal/mediatype"
)

// Processor runs a single processing pass over a source tree. It should be
// instantiated using the New function.
type Processor struct {
	cfg    *Config
	fsys   common.FileSystem
	algo   hashing.HashAlgorithm
	filter mediatype.Filter
}

// New validates the configuration and returns a Processor using SHA-256
// fingerprinting and the default file system.
func New(cfg *Config) (*Processor, error) {
	return NewWithFS(cfg, common.NewDefaultFileSystem())
}

// NewWithFS validates the configuration and returns a Processor using the
// given file system.
func NewWithFS(cfg *Config, fsys common.FileSystem) (*Processor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.validate(fsys); err != nil {
		return nil, err
	}
	return &Processor{
		cfg:    cfg,
		fsys:   fsys,
		algo:   &hashing.SHA256{},
		filter: mediatype.NewFilter(cfg.MIMETypes),
	}, nil
}

// Process prepares the result directory, walks the source tree, copies every
// qualifying file under its fingerprinted name, and returns the resulting
// file map. The caller chooses how to persist the map.
//
// Any filesystem failure aborts the run. Inserting a duplicate original path
// into the map is also a hard error.
func (p *Processor) Process() (*filemap.FileMap, error) {
	if err := prepareOutput(p.fsys, p.cfg.Source, p.cfg.Result, p.cfg.FollowLinks); err != nil {
		return nil, err
	}

	fm := filemap.New(p.cfg.Result)

	err := walkEntries(p.fsys, p.cfg.Source, p.cfg.FollowLinks, func(path string, info fs.FileInfo) error {
		if info.IsDir() {
			return nil
		}
		if !info.Mode().IsRegular() {
			slog.Debug("skipping non-regular file", "path", path)
			return nil
		}
		return p.processFile(fm, path, info)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("processing complete", "source", p.cfg.Source, "result", p.cfg.Result, "entries", fm.Len())
	return fm, nil
}

// processFile classifies a single file and, unless it is skipped, copies it
// into the result tree and records the mapping.
func (p *Processor) processFile(fm *filemap.FileMap, path string, info fs.FileInfo) error {
	fingerprint := !p.excluded(path)

	if !p.filter.Empty() {
		mediaType, ok := mediatype.FromPath(path)
		if !ok {
			if p.cfg.Strict {
				return fmt.Errorf("%w: %s", ErrUnresolvedMediaType, path)
			}
			slog.Debug("skipping file with unresolved media type", "path", path)
			return nil
		}
		if !p.filter.Matches(mediaType) {
			if !p.cfg.Copy {
				slog.Debug("skipping file outside media-type filter", "path", path, "media_type", mediaType)
				return nil
			}
			// Copied through unchanged, like an excluded file.
			fingerprint = false
		}
	}

	content, err := p.fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	newName := filepath.Base(path)
	if fingerprint {
		hash, err := p.algo.Sum(bytes.NewReader(content))
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", path, err)
		}
		newName = fingerprintedName(newName, hash)
	}

	rel, err := filepath.Rel(p.cfg.Source, path)
	if err != nil {
		return fmt.Errorf("failed to compute relative location of %s: %w", path, err)
	}
	relDir := filepath.Dir(rel)

	diskDest := filepath.Join(p.cfg.Result, relDir, newName)
	if err := p.fsys.WriteFile(diskDest, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", path, diskDest, err)
	}

	recorded := p.destinationPath(relDir, newName)
	if err := fm.Add(path, recorded); err != nil {
		return fmt.Errorf("failed to record mapping for %s: %w", path, err)
	}

	slog.Debug("processed file", "source", path, "destination", recorded, "fingerprinted", fingerprint)
	return nil
}

// excluded reports whether a no-hash rule forces pass-through for path.
func (p *Processor) excluded(path string) bool {
	for _, rule := range p.cfg.NoHash.Paths {
		if joinPreserving(p.cfg.Source, rule) == path {
			return true
		}
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, rule := range p.cfg.NoHash.Extensions {
		if rule == ext {
			return true
		}
	}
	return false
}

// destinationPath builds the path recorded in the file map. When a route
// prefix is configured, the prefix is prepended and a leading slash on the
// result directory is dropped to avoid a doubled separator. The spelling of
// the result directory is preserved so that lookups can strip it by prefix.
func (p *Processor) destinationPath(relDir, name string) string {
	if relDir == "." {
		relDir = ""
	}
	if p.cfg.Prefix == "" {
		return joinLiteral(p.cfg.Result, relDir, name)
	}
	return joinLiteral(p.cfg.Prefix, strings.TrimPrefix(p.cfg.Result, "/"), relDir, name)
}

// fingerprintedName embeds a hash token between a filename's stem and
// extension: "app.js" becomes "app.HASH.js", "app" becomes "app.HASH".
func fingerprintedName(base, hash string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		return stem + "." + hash
	}
	return stem + "." + hash + ext
}
