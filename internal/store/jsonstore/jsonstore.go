// Package jsonstore persists the todo list as a single human-readable
// JSON file. No locking; the file belongs to one local session.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/idilsaglam/todoman/internal/model"
	"github.com/idilsaglam/todoman/internal/todo"
)

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.json"

// FS is the file facility the store needs.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFS implements FS on the real file system. Writes go through a temp
// file and rename, so a failed write leaves the old file intact.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFS) WriteFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// Store reads and writes one JSON file.
type Store struct {
	path string
	fs   FS
}

// New returns a store for path. A relative path is resolved against the
// working directory; a nil fsys means OSFS.
func New(path string, fsys FS) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, path)
	}
	if fsys == nil {
		fsys = OSFS{}
	}
	return &Store{path: path, fs: fsys}, nil
}

func (s *Store) Path() string { return s.path }

// Load reads the list. A missing file is an empty list. Unreadable or
// invalid content is returned as a *todo.IOError; callers are expected to
// fall back to an empty list.
func (s *Store) Load() ([]model.Todo, error) {
	b, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, &todo.IOError{Op: "read file", Err: err}
	}
	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &todo.IOError{Op: "json unmarshal", Err: err}
	}
	if items == nil {
		items = []model.Todo{}
	}
	return items, nil
}

// Save overwrites the file with items.
func (s *Store) Save(items []model.Todo) error {
	if items == nil {
		items = []model.Todo{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.fs.WriteFile(s.path, b); err != nil {
		return &todo.IOError{Op: "write file", Err: err}
	}
	return nil
}
