package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/plof27/atomichron/internal/domain"
)

// Store loads and saves the full entry list as a single blob
type Store interface {
	Load(ctx context.Context) (*domain.EntryList, error)
	Save(ctx context.Context, list *domain.EntryList) error
}

// DecodeError marks a data file whose contents could not be parsed. It is
// distinct from plain read/write failure so callers can report "entries file
// unreadable" instead of a generic IO message.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("entries file %s unreadable: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FileStore persists the entry list as one JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the data file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the entry list from disk. A missing file is not an error: it
// yields a fresh empty list, so first runs need no setup step.
func (s *FileStore) Load(ctx context.Context) (*domain.EntryList, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewEntryList(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	list := domain.NewEntryList()
	if err := json.Unmarshal(data, list); err != nil {
		return nil, &DecodeError{Path: s.path, Err: err}
	}

	// Normalize nils introduced by decoding so empty collections round-trip.
	if list.Entries == nil {
		list.Entries = make(map[uuid.UUID]*domain.Entry)
	}
	for _, e := range list.Entries {
		if e.Tags == nil {
			e.Tags = []string{}
		}
	}

	return list, nil
}

// Save atomically writes the entry list to disk: marshal, write a temp file,
// then rename over the destination. A failed save never leaves a partial
// data file behind.
func (s *FileStore) Save(ctx context.Context, list *domain.EntryList) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling entries: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, err)
	}

	return nil
}
