package filemap

import (
	"fmt"
	"os"
)

// EnvFileMap is the environment-style variable used to hand the serialized
// file map from the build process to the consuming application.
const EnvFileMap = "CACHE_BUSTER_FILE_MAP"

// Load reconstructs a FileMap from the EnvFileMap environment variable.
// The variable is expected to be populated at build time with the output of
// Marshal. A missing variable or malformed payload is an error; consuming
// processes should treat it as fatal at startup.
func Load() (*FileMap, error) {
	payload := os.Getenv(EnvFileMap)
	if payload == "" {
		return nil, fmt.Errorf("%w: %s", ErrEnvNotSet, EnvFileMap)
	}
	return UnmarshalManifest([]byte(payload))
}
