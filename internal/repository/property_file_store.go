package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/lightbnb/api/internal/entity"
)

// FilePropertyStore keeps properties in a JSON file keyed by identifier.
// It is a separate store from PostgreSQL: properties written here are not
// returned by PGXPropertiesRepository.Search.
// It is safe for concurrent use.
type FilePropertyStore struct {
	mu         sync.Mutex
	path       string
	properties map[string]entity.Property
}

// NewFilePropertyStore loads the collection at path, starting empty when the file does not exist.
func NewFilePropertyStore(path string) (*FilePropertyStore, error) {
	if path == "" {
		return nil, fmt.Errorf("property file path must not be empty")
	}

	store := &FilePropertyStore{path: path, properties: map[string]entity.Property{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read property file %q: %w", path, err)
	}
	if len(raw) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(raw, &store.properties); err != nil {
		return nil, fmt.Errorf("decode property file %q: %w", path, err)
	}
	return store, nil
}

// Create assigns the next sequential identifier (collection size + 1) and persists the collection.
func (s *FilePropertyStore) Create(ctx context.Context, property *entity.Property) (*entity.Property, error) {
	if property == nil {
		return nil, fmt.Errorf("property payload is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *property
	stored.ID = int64(len(s.properties) + 1)
	key := strconv.FormatInt(stored.ID, 10)
	if _, taken := s.properties[key]; taken {
		return nil, fmt.Errorf("property id %d already present in %q", stored.ID, s.path)
	}

	s.properties[key] = stored
	if err := s.flush(); err != nil {
		delete(s.properties, key)
		return nil, err
	}
	return &stored, nil
}

// Len reports how many properties the store holds.
func (s *FilePropertyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.properties)
}

// flush writes the collection to a temp file and renames it over the target.
func (s *FilePropertyStore) flush() error {
	payload, err := json.MarshalIndent(s.properties, "", "  ")
	if err != nil {
		return fmt.Errorf("encode properties: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create property dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".properties-*.json")
	if err != nil {
		return fmt.Errorf("create temp property file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write property file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close property file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace property file: %w", err)
	}
	return nil
}
