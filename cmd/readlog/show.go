package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/readlog"
	bt "github.com/fwojciec/readlog/bubbletea"
	"github.com/fwojciec/readlog/goldmark"
	readlogjson "github.com/fwojciec/readlog/json"
	"github.com/spf13/cobra"
)

func showCmd(getenv func(string) string) *cobra.Command {
	var (
		library string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a book's review rendered for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := openBook(cmd.Context(), library, args[0])
			if err != nil {
				return err
			}
			return writeBook(cmd.OutOrStdout(), b, width)
		},
	}

	cmd.Flags().StringVar(&library, "library", envOr(getenv, "READLOG_LIBRARY", defaultLibrary), "path to the library file")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width in columns")
	return cmd
}

func editCmd(getenv func(string) string) *cobra.Command {
	var library string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a book's review with a live preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, b, err := openBook(cmd.Context(), library, args[0])
			if err != nil {
				return err
			}
			return bt.Run(cmd.Context(), bt.New(b, saveReview(store, b.ID), readlog.DefaultTheme()))
		},
	}

	cmd.Flags().StringVar(&library, "library", envOr(getenv, "READLOG_LIBRARY", defaultLibrary), "path to the library file")
	return cmd
}

// openBook opens the library at path and loads the book with the given id.
func openBook(ctx context.Context, path, rawID string) (readlog.BookStore, readlog.Book, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return nil, readlog.Book{}, fmt.Errorf("invalid book id %q: %w", rawID, readlog.ErrValidation)
	}
	store, err := readlogjson.Open(path)
	if err != nil {
		return nil, readlog.Book{}, err
	}
	b, err := store.Book(ctx, id)
	if err != nil {
		return nil, readlog.Book{}, err
	}
	return store, b, nil
}

// saveReview returns a SaveFunc that stores review on the book with id,
// reloading it first so fields and books saved by another process, such as
// a running server, are kept.
func saveReview(store readlog.BookStore, id int) bt.SaveFunc {
	return func(ctx context.Context, review string) error {
		b, err := store.Book(ctx, id)
		if err != nil {
			return err
		}
		b.Review = review
		return store.UpdateBook(ctx, &b)
	}
}

func writeBook(w io.Writer, b readlog.Book, width int) error {
	theme := readlog.DefaultTheme()
	header := fmt.Sprintf("%s by %s", b.Title, b.Author)
	if b.Rating > 0 {
		header += fmt.Sprintf(" (%d/5)", b.Rating)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
		return err
	}
	_, err := io.WriteString(w, goldmark.Render(b.Review, width, theme))
	return err
}
