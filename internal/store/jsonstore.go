// Package store persists raw upstream payloads and derived JSON documents
// as files under a root directory.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// JSONStore is a flat file store rooted at a directory, e.g. "data/raw".
// Relative paths name the documents; parent directories are created on
// demand.
type JSONStore struct {
	Root string
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WriteRaw stores body at rel. With pretty set, valid JSON is re-indented
// before writing; anything that fails to parse is written as-is.
func (s *JSONStore) WriteRaw(rel string, body []byte, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}

// WriteJSON marshals v indented and stores it at rel. Used for derived
// documents (snapshots, aggregates) rather than cached upstream bodies.
func (s *JSONStore) WriteJSON(rel string, v any) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}

// ReadJSON loads rel and unmarshals it into out.
func (s *JSONStore) ReadJSON(rel string, out any) error {
	b, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
