// Package cmdcommon provides common functionality for the command-line tools.
package cmdcommon

// DefaultManifestFile is where the build command persists the file map and
// where the resolve command looks for it, unless overridden by a flag.
const DefaultManifestFile = "cache_buster_data.json"
