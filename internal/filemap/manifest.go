package filemap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// ManifestVersion is the current version of the file map manifest format.
	ManifestVersion = "1.0"
	// ManifestFormat identifies the manifest payload type.
	ManifestFormat = "asset-file-map"

	manifestFilePermissions = 0o644
)

// manifest is the JSON envelope for a persisted FileMap.
type manifest struct {
	Version     string            `json:"version"`
	Format      string            `json:"format"`
	GeneratedAt time.Time         `json:"generated_at"`
	RunID       string            `json:"run_id"`
	BaseDir     string            `json:"base_dir"`
	Entries     map[string]string `json:"entries"`
}

// Marshal serializes the map to its JSON manifest form. Each call stamps a
// fresh run ID and generation time; the entries and base directory round-trip
// losslessly through UnmarshalManifest.
func (m *FileMap) Marshal() ([]byte, error) {
	env := manifest{
		Version:     ManifestVersion,
		Format:      ManifestFormat,
		GeneratedAt: time.Now().UTC(),
		RunID:       uuid.NewString(),
		BaseDir:     m.baseDir,
		Entries:     m.entries,
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalManifest parses and validates a JSON manifest and reconstructs
// the FileMap it carries.
func UnmarshalManifest(content []byte) (*FileMap, error) {
	var env manifest
	if err := json.Unmarshal(content, &env); err != nil {
		if syntaxErr, ok := err.(*json.SyntaxError); ok {
			return nil, fmt.Errorf("%w: invalid JSON syntax at offset %d", ErrManifestParse, syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	if err := validateManifest(env); err != nil {
		return nil, err
	}

	entries := env.Entries
	if entries == nil {
		entries = make(map[string]string)
	}
	return &FileMap{
		entries: entries,
		baseDir: env.BaseDir,
	}, nil
}

// validateManifest checks the envelope fields of a parsed manifest.
func validateManifest(env manifest) error {
	if env.Version != ManifestVersion {
		return fmt.Errorf("%w: version %s", ErrUnsupportedVersion, env.Version)
	}
	if env.Format != ManifestFormat {
		return fmt.Errorf("%w: format %q", ErrInvalidManifest, env.Format)
	}
	if env.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: zero generation timestamp", ErrInvalidManifest)
	}
	if _, err := uuid.Parse(env.RunID); err != nil {
		return fmt.Errorf("%w: run id %q", ErrInvalidManifest, env.RunID)
	}
	return nil
}

// WriteFile persists the manifest to path, replacing any previous manifest.
func (m *FileMap) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, manifestFilePermissions); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifestFile loads a FileMap from a manifest file written by WriteFile.
func ReadManifestFile(path string) (*FileMap, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return UnmarshalManifest(content)
}
