package json

import (
	"time"

	"github.com/fwojciec/readlog"
)

// Book is the JSON representation of a readlog.Book.
type Book struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn,omitempty"`
	Genre           string    `json:"genre,omitempty"`
	Format          string    `json:"format,omitempty"`
	Publisher       string    `json:"publisher,omitempty"`
	PublishDate     string    `json:"publish_date,omitempty"`
	Series          string    `json:"series,omitempty"`
	Volume          int       `json:"volume,omitempty"`
	Pages           int       `json:"pages"`
	Status          string    `json:"status"`
	ReadingProgress int       `json:"reading_progress"`
	Rating          int       `json:"rating"`
	Spice           int       `json:"spice"`
	Tension         int       `json:"tension"`
	Fiction         bool      `json:"fiction"`
	Review          string    `json:"review"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewBook converts a domain book to its JSON representation.
func NewBook(b readlog.Book) Book {
	return Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		Format:          b.Format,
		Publisher:       b.Publisher,
		PublishDate:     b.PublishDate,
		Series:          b.Series,
		Volume:          b.Volume,
		Pages:           b.Pages,
		Status:          string(b.Status),
		ReadingProgress: b.ReadingProgress,
		Rating:          b.Rating,
		Spice:           b.Spice,
		Tension:         b.Tension,
		Fiction:         b.Fiction,
		Review:          b.Review,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Domain converts the JSON representation back to a domain book.
func (b Book) Domain() readlog.Book {
	return readlog.Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		Format:          b.Format,
		Publisher:       b.Publisher,
		PublishDate:     b.PublishDate,
		Series:          b.Series,
		Volume:          b.Volume,
		Pages:           b.Pages,
		Status:          readlog.BookStatus(b.Status),
		ReadingProgress: b.ReadingProgress,
		Rating:          b.Rating,
		Spice:           b.Spice,
		Tension:         b.Tension,
		Fiction:         b.Fiction,
		Review:          b.Review,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
