package filemap

import "errors"

var (
	// ErrKeyExists indicates an attempt to insert an original path that is
	// already present in the map. Entries are write-once per key.
	ErrKeyExists = errors.New("key exists")

	// ErrUnsupportedVersion indicates that the manifest version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")

	// ErrInvalidManifest indicates that the manifest content is malformed or
	// fails field validation.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrManifestParse indicates that the manifest payload could not be parsed as JSON.
	ErrManifestParse = errors.New("failed to parse manifest")

	// ErrEnvNotSet indicates that the file map environment variable is absent or empty.
	ErrEnvNotSet = errors.New("file map environment variable is not set")
)
