package blogengine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Error taxonomy shared by the stores and mapped to HTTP statuses at the
// handler boundary.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Store provides CRUD over the single-document JSON stores (authors,
// categories, tags, image metadata, settings). Every mutation is a
// whole-document read-modify-write cycle; a per-document mutex serializes
// writers within the process so concurrent requests cannot lose updates.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dataDir. Documents are created lazily
// on first write; a missing document reads as its empty default.
func NewStore(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex for one document and returns its unlock func.
func (s *Store) lock(rel string) func() {
	s.mu.Lock()
	m, ok := s.locks[rel]
	if !ok {
		m = &sync.Mutex{}
		s.locks[rel] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// readDoc unmarshals the document at rel into v. A missing file is
// reported as os.ErrNotExist so callers can substitute their default.
func (s *Store) readDoc(rel string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, rel))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeDoc serializes v pretty-printed with two-space indentation and
// overwrites the document at rel, creating parent directories as needed.
func (s *Store) writeDoc(rel string, v any) error {
	path := filepath.Join(s.dataDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
