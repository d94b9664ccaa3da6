package processor

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-cache-buster/internal/common"
)

// NoHashRules lists files that are copied into the result directory without a
// hash in their filename. This is useful for vendor assets that reference
// each other by name, where renaming one file would break how the others
// resolve it.
type NoHashRules struct {
	// Paths are exact paths relative to the source directory.
	Paths []string `toml:"paths"`

	// Extensions are file extensions without the leading dot (e.g. "wasm").
	Extensions []string `toml:"extensions"`
}

// Config describes a single processing run.
type Config struct {
	// Source is the directory to scan. Required.
	Source string `toml:"source"`

	// Result is the output directory. Required. It is destroyed and
	// recreated on every run.
	Result string `toml:"result"`

	// MIMETypes restricts processing to files of the listed media types.
	// An empty list processes every file.
	MIMETypes []string `toml:"mime_types"`

	// Prefix is prepended to every destination path recorded in the file
	// map. It does not affect where files are written on disk.
	Prefix string `toml:"prefix"`

	// Copy controls what happens to files that do not match the media-type
	// filter: true copies them through unchanged and records them, false
	// skips them entirely.
	Copy bool `toml:"copy"`

	// FollowLinks controls whether symbolic links to directories are
	// traversed during the walk and the mirror pass.
	FollowLinks bool `toml:"follow_links"`

	// Strict makes an unresolved media type a fatal error. When false,
	// files whose type cannot be resolved are skipped.
	Strict bool `toml:"strict"`

	// NoHash lists exclusion rules that force pass-through without hashing.
	NoHash NoHashRules `toml:"no_hash"`
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWithFS(common.NewDefaultFileSystem(), path)
}

// LoadConfigWithFS reads and validates a TOML configuration file using the
// given file system.
func LoadConfigWithFS(fsys common.FileSystem, path string) (*Config, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(fsys); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration before any processing occurs. Every path
// named in a no-hash rule must exist under the source directory.
func (c *Config) Validate() error {
	return c.validate(common.NewDefaultFileSystem())
}

func (c *Config) validate(fsys common.FileSystem) error {
	if c.Source == "" {
		return ErrSourceRequired
	}
	if c.Result == "" {
		return ErrResultRequired
	}

	info, err := fsys.Stat(c.Source)
	if err != nil {
		return fmt.Errorf("failed to access source directory %s: %w", c.Source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, c.Source)
	}

	for _, rule := range c.NoHash.Paths {
		exists, err := fsys.FileExists(filepath.Join(c.Source, rule))
		if err != nil {
			return fmt.Errorf("failed to check no-hash path %s: %w", rule, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrExcludedPathMissing, rule)
		}
	}
	return nil
}
