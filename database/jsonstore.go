package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// JSONStore keeps the approval ledger in a single pretty-printed JSON
// document, compatible with the approved_messages.json layout earlier
// deployments used.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the full mapping from disk. A missing file means a first run; a
// corrupt file is recovered from by starting empty.
func (s *JSONStore) Load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("No persistence file found at %s. Starting with an empty ledger.", s.path)
		return make(map[string]string)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Failed to parse %s: %v. Starting with an empty ledger.", s.path, err)
		return make(map[string]string)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	log.Printf("Loaded %d approved messages from %s", len(entries), s.path)
	return entries
}

// Save writes the full mapping to disk, replacing the previous document.
func (s *JSONStore) Save(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize approved messages: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create persistence directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	log.Printf("Saved %d approved messages to %s", len(entries), s.path)
	return nil
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error {
	return nil
}
