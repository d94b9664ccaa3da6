package processor

import "errors"

var (
	// ErrSourceRequired indicates that the source directory is missing from the configuration.
	ErrSourceRequired = errors.New("source directory is required")

	// ErrResultRequired indicates that the result directory is missing from the configuration.
	ErrResultRequired = errors.New("result directory is required")

	// ErrSourceNotDir indicates that the configured source path is not a directory.
	ErrSourceNotDir = errors.New("source path is not a directory")

	// ErrExcludedPathMissing indicates that a no-hash path rule names a file
	// that does not exist under the source directory.
	ErrExcludedPathMissing = errors.New("no-hash path does not exist under source")

	// ErrUnresolvedMediaType indicates that a file's media type could not be
	// resolved from its extension while strict mode is enabled.
	ErrUnresolvedMediaType = errors.New("could not resolve media type")

	// ErrNilConfig indicates that the configuration is nil during Processor initialization.
	ErrNilConfig = errors.New("config cannot be nil")
)
