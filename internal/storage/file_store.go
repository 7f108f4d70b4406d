package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const stateFileName = "feastly-state.json"

// FileStore persists keys as a single JSON document on an afero filesystem.
// Production uses afero.NewOsFs under the configured data directory; tests
// run against afero.NewMemMapFs.
type FileStore struct {
	fs   afero.Fs
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// NewFileStore opens (or creates) the state file under dir.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	s := &FileStore{
		fs:     fs,
		path:   filepath.Join(dir, stateFileName),
		values: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No state yet, start empty
		}
		return fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}
	return nil
}

// flush writes the whole document back. Callers must hold the mutex.
func (s *FileStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	return nil
}

// Get returns the stored value for key, with ok=false when the key is absent.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores value under key, replacing any previous value. Values must be
// valid JSON since the whole document is serialized as one JSON object.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append(json.RawMessage(nil), value...)
	return s.flush()
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}
