// Package readlog defines the domain types of a personal reading log: books,
// their reviews, and the events published when they change.
package readlog

import (
	"context"
	"time"
)

// BookStatus is the reading state of a book.
type BookStatus string

const (
	StatusUnread    BookStatus = "unread"
	StatusReading   BookStatus = "reading"
	StatusRead      BookStatus = "read"
	StatusAbandoned BookStatus = "abandoned"
)

// Book is a single entry in the reading log. Review holds the raw review
// markup as typed by the user; it is rendered on display, never stored
// rendered.
type Book struct {
	ID              int
	Title           string
	Author          string
	ISBN            string
	Genre           string
	Format          string
	Publisher       string
	PublishDate     string
	Series          string
	Volume          int
	Pages           int
	Status          BookStatus
	ReadingProgress int
	Rating          int
	Spice           int
	Tension         int
	Fiction         bool
	Review          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookFilter narrows a book listing. Search matches title or author,
// case-insensitively. The zero value matches every book.
type BookFilter struct {
	Search string
}

// BookStore persists books. Implementations validate books on create and
// update and return ErrNotFound for unknown IDs.
type BookStore interface {
	Books(ctx context.Context, filter BookFilter) ([]Book, error)
	Book(ctx context.Context, id int) (Book, error)
	CreateBook(ctx context.Context, b *Book) error
	UpdateBook(ctx context.Context, b *Book) error
	DeleteBook(ctx context.Context, id int) error
}

// RenderFunc converts review markup to HTML.
type RenderFunc func(source string) string
