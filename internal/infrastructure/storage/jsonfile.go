// internal/infrastructure/storage/jsonfile.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile persists a single value as a whole-file JSON document. Every save
// rewrites the entire file; a crash mid-write can corrupt that one file,
// which the single-operator model accepts.
type JSONFile struct {
	path string
}

// NewJSONFile creates a store backed by the given file path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the file into v. A missing file is not an error; v is left
// untouched so callers start from their zero state.
func (f *JSONFile) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", f.path, err)
	}
	return nil
}

// Save overwrites the file with the JSON encoding of v, creating the parent
// directory if needed.
func (f *JSONFile) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
