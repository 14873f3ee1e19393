// Package mock provides test doubles for readlog interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/readlog"
)

// Interface compliance checks.
var _ readlog.BookStore = (*BookStore)(nil)

// BookStore is a test double for readlog.BookStore.
// Set the function fields for the methods you need.
type BookStore struct {
	BooksFn      func(ctx context.Context, filter readlog.BookFilter) ([]readlog.Book, error)
	BookFn       func(ctx context.Context, id int) (readlog.Book, error)
	CreateBookFn func(ctx context.Context, b *readlog.Book) error
	UpdateBookFn func(ctx context.Context, b *readlog.Book) error
	DeleteBookFn func(ctx context.Context, id int) error
}

// Books delegates to BooksFn.
func (s *BookStore) Books(ctx context.Context, filter readlog.BookFilter) ([]readlog.Book, error) {
	return s.BooksFn(ctx, filter)
}

// Book delegates to BookFn.
func (s *BookStore) Book(ctx context.Context, id int) (readlog.Book, error) {
	return s.BookFn(ctx, id)
}

// CreateBook delegates to CreateBookFn.
func (s *BookStore) CreateBook(ctx context.Context, b *readlog.Book) error {
	return s.CreateBookFn(ctx, b)
}

// UpdateBook delegates to UpdateBookFn.
func (s *BookStore) UpdateBook(ctx context.Context, b *readlog.Book) error {
	return s.UpdateBookFn(ctx, b)
}

// DeleteBook delegates to DeleteBookFn.
func (s *BookStore) DeleteBook(ctx context.Context, id int) error {
	return s.DeleteBookFn(ctx, id)
}
