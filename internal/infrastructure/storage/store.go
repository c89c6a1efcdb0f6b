package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists keyed JSON documents under a single data directory. Each
// key maps to one file (<dir>/<key>.json) holding the JSON serialization of
// the value. Every save synchronously overwrites the prior document; there
// is no versioning and no migration path.
//
// Timestamps round-trip through RFC 3339 via encoding/json, so a loaded
// collection recovers the original instants, not just their string form.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load reads the document for key into v. A missing file or undecodable
// content leaves v untouched and returns nil: callers pass v pre-set to the
// default value and get that default back on any read failure.
func (s *Store) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil
	}
	return nil
}

// Save writes v as indented JSON under key, replacing any prior document.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("storage: failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
