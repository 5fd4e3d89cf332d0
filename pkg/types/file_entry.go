package types

import (
	"encoding/json"
	"path/filepath"
)

// FileEntry represents a single file tracked by the ordered list.
// The path is the only attribute the application cares about; no size,
// encoding or hash metadata is kept.
type FileEntry struct {
	Path string `json:"path"`
}

// Name returns the base name of the file
func (f FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// ToJSON converts FileEntry to JSON string
func (f FileEntry) ToJSON() string {
	jsonBytes, _ := json.Marshal(f)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (f FileEntry) String() string {
	return f.Path
}
