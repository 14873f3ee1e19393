package json

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/readlog"
)

var _ readlog.BookStore = (*BookStore)(nil)

// BookStore is a readlog.BookStore backed by a single library file. Every
// mutation rewrites the file; a failed write leaves the store unchanged.
//
// The file may be shared with other processes, such as a running server and
// a terminal editor. Each operation first reloads the file if it was replaced
// since it was last read, so a write never discards books another process
// saved in the meantime.
type BookStore struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	path string
	mu   sync.Mutex
	lib  Library
	// info describes the file lib was read from or last written to.
	info os.FileInfo
}

// Open loads the library at path. A missing file yields an empty store that
// is created on the first write.
func Open(path string) (*BookStore, error) {
	s := &BookStore{
		Now:  time.Now,
		path: path,
		lib:  Library{NextID: 1},
	}
	if err := s.reload(); err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return s, nil
}

// Books returns the books matching filter in ID order.
func (s *BookStore) Books(_ context.Context, filter readlog.BookFilter) ([]readlog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reload(); err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	books := make([]readlog.Book, 0, len(s.lib.Books))
	for _, b := range s.lib.Books {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) {
			continue
		}
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

// Book returns the book with the given ID.
func (s *BookStore) Book(_ context.Context, id int) (readlog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reload(); err != nil {
		return readlog.Book{}, err
	}

	i := s.index(id)
	if i < 0 {
		return readlog.Book{}, fmt.Errorf("book %d: %w", id, readlog.ErrNotFound)
	}
	return s.lib.Books[i], nil
}

// CreateBook validates b, assigns its ID and timestamps, and persists it.
func (s *BookStore) CreateBook(_ context.Context, b *readlog.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reload(); err != nil {
		return err
	}

	created := *b
	created.ID = s.lib.NextID
	if created.Status == "" {
		created.Status = readlog.StatusUnread
	}
	now := s.Now()
	created.CreatedAt = now
	created.UpdatedAt = now

	next := Library{
		NextID: s.lib.NextID + 1,
		Books:  append(slices.Clone(s.lib.Books), created),
	}
	if err := s.commit(next); err != nil {
		return err
	}
	*b = created
	return nil
}

// UpdateBook replaces the stored book with the same ID. CreatedAt is kept
// from the stored book.
func (s *BookStore) UpdateBook(_ context.Context, b *readlog.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reload(); err != nil {
		return err
	}

	i := s.index(b.ID)
	if i < 0 {
		return fmt.Errorf("book %d: %w", b.ID, readlog.ErrNotFound)
	}
	updated := *b
	if updated.Status == "" {
		updated.Status = readlog.StatusUnread
	}
	updated.CreatedAt = s.lib.Books[i].CreatedAt
	updated.UpdatedAt = s.Now()

	books := slices.Clone(s.lib.Books)
	books[i] = updated
	if err := s.commit(Library{NextID: s.lib.NextID, Books: books}); err != nil {
		return err
	}
	*b = updated
	return nil
}

// DeleteBook removes the book with the given ID.
func (s *BookStore) DeleteBook(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reload(); err != nil {
		return err
	}

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("book %d: %w", id, readlog.ErrNotFound)
	}
	books := slices.Delete(slices.Clone(s.lib.Books), i, i+1)
	return s.commit(Library{NextID: s.lib.NextID, Books: books})
}

// index returns the position of the book with id, or -1. Callers hold mu.
func (s *BookStore) index(id int) int {
	return slices.IndexFunc(s.lib.Books, func(b readlog.Book) bool { return b.ID == id })
}

// reload re-reads the library file when it differs from the one lib came
// from. Save always replaces the file by rename, so any write by another
// store shows up as a different file, modification time or size. A missing
// file keeps the current state. Callers hold mu.
func (s *BookStore) reload() error {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat library: %w", err)
	}
	if s.info != nil && os.SameFile(s.info, info) &&
		s.info.ModTime().Equal(info.ModTime()) && s.info.Size() == info.Size() {
		return nil
	}
	l, err := Load(s.path)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}
	s.lib = l
	s.info = info
	return nil
}

// commit persists next and makes it current. Callers hold mu.
func (s *BookStore) commit(next Library) error {
	if err := Save(s.path, next); err != nil {
		return fmt.Errorf("save library: %w", err)
	}
	s.lib = next
	// A failed stat only costs one extra reload on the next operation.
	s.info, _ = os.Stat(s.path)
	return nil
}
