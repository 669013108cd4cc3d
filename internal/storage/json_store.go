package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitdash/internal/logger"
)

type document struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitdash init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// A corrupt document must never take the app down; start from an
		// empty record set and let the next save rewrite the file.
		logger.Warn("storage document is corrupt, resetting", "path", s.path, "error", err)
		s.doc = &document{Version: 1}
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetRecord(key string) (json.RawMessage, bool, error) {
	if s.doc == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.doc.Records[key]
	return raw, ok, nil
}

func (s *JSONStore) SetRecord(key string, value json.RawMessage) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Records[key] = value
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: JSONStore is not safe for concurrent use by multiple
// goroutines or processes sharing the same path.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
