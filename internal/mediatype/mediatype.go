// Package mediatype resolves media types from file extensions and matches
// them against a configured filter. Resolution is best-effort extension
// sniffing; a built-in table covers the asset types a web build produces so
// results do not depend on the host's MIME database.
package mediatype

import (
	"mime"
	"path/filepath"
	"strings"
)

// assetTypes maps file extensions to media types for common web assets.
// Consulted before the host MIME database so processing runs are
// deterministic across machines.
var assetTypes = map[string]string{
	".avif":  "image/avif",
	".css":   "text/css",
	".eot":   "application/vnd.ms-fontobject",
	".gif":   "image/gif",
	".htm":   "text/html",
	".html":  "text/html",
	".ico":   "image/vnd.microsoft.icon",
	".jpeg":  "image/jpeg",
	".jpg":   "image/jpeg",
	".js":    "text/javascript",
	".json":  "application/json",
	".map":   "application/json",
	".mjs":   "text/javascript",
	".mp4":   "video/mp4",
	".otf":   "font/otf",
	".pdf":   "application/pdf",
	".png":   "image/png",
	".svg":   "image/svg+xml",
	".ttf":   "font/ttf",
	".txt":   "text/plain",
	".wasm":  "application/wasm",
	".webm":  "video/webm",
	".webp":  "image/webp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".xml":   "text/xml",
}

// FromPath resolves the media type of path from its extension.
// The second return value reports whether a type could be resolved.
func FromPath(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	if t, ok := assetTypes[ext]; ok {
		return t, true
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return Normalize(t), true
	}
	return "", false
}

// Normalize strips media type parameters (e.g. "; charset=utf-8") and
// lowercases the type so filter comparison is exact.
func Normalize(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// Filter is a set of recognized media types. An empty filter matches
// every file.
type Filter struct {
	types map[string]struct{}
}

// NewFilter builds a filter from a list of media types.
func NewFilter(types []string) Filter {
	if len(types) == 0 {
		return Filter{}
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[Normalize(t)] = struct{}{}
	}
	return Filter{types: set}
}

// Empty reports whether no filter is configured.
func (f Filter) Empty() bool {
	return len(f.types) == 0
}

// Matches reports whether mediaType is one of the recognized types.
func (f Filter) Matches(mediaType string) bool {
	_, ok := f.types[Normalize(mediaType)]
	return ok
}
