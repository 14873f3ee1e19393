// Package json persists the reading log as a single versioned JSON file and
// provides the JSON representation of books shared by the HTTP API.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/readlog"
)

// Library is the full persisted state of a reading log.
type Library struct {
	NextID int
	Books  []readlog.Book
}

// envelope is the v1 wire format for a persisted library.
type envelope struct {
	Version int    `json:"version"`
	NextID  int    `json:"next_id"`
	Books   []Book `json:"books"`
}

// MarshalLibrary serializes a Library to JSON in v1 envelope format.
// Books are written in ID order.
func MarshalLibrary(l Library) ([]byte, error) {
	books := make([]readlog.Book, len(l.Books))
	copy(books, l.Books)
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	env := envelope{
		Version: 1,
		NextID:  l.NextID,
		Books:   make([]Book, len(books)),
	}
	for i, b := range books {
		env.Books[i] = NewBook(b)
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalLibrary deserializes a Library from JSON in v1 envelope format.
// NextID is raised above the highest stored ID if the file understates it.
func UnmarshalLibrary(data []byte) (Library, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Library{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return Library{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	l := Library{
		NextID: env.NextID,
		Books:  make([]readlog.Book, len(env.Books)),
	}
	seen := make(map[int]bool, len(env.Books))
	for i, dto := range env.Books {
		b := dto.Domain()
		if b.ID <= 0 {
			return Library{}, fmt.Errorf("book %d: invalid id %d", i, b.ID)
		}
		if seen[b.ID] {
			return Library{}, fmt.Errorf("book %d: duplicate id %d", i, b.ID)
		}
		seen[b.ID] = true
		if b.ID >= l.NextID {
			l.NextID = b.ID + 1
		}
		l.Books[i] = b
	}
	if l.NextID < 1 {
		l.NextID = 1
	}
	return l, nil
}

// Save writes a Library to a JSON file, creating parent directories as needed.
func Save(path string, l Library) error {
	data, err := MarshalLibrary(l)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Library from a JSON file.
func Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalLibrary(data)
}
