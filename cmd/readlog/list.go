package main

import (
	"fmt"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/goldmark"
	readlogjson "github.com/fwojciec/readlog/json"
	"github.com/spf13/cobra"
)

func listCmd(getenv func(string) string) *cobra.Command {
	var (
		library string
		search  string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books with a one-line review excerpt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := readlogjson.Open(library)
			if err != nil {
				return err
			}
			books, err := store.Books(cmd.Context(), readlog.BookFilter{Search: search})
			if err != nil {
				return err
			}
			for _, b := range books {
				line := fmt.Sprintf("%d\t%s by %s", b.ID, b.Title, b.Author)
				if excerpt := goldmark.Excerpt(b.Review, width); excerpt != "" {
					line += "\t" + excerpt
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&library, "library", envOr(getenv, "READLOG_LIBRARY", defaultLibrary), "path to the library file")
	cmd.Flags().StringVar(&search, "search", "", "only list books whose title or author contains this text")
	cmd.Flags().IntVar(&width, "width", 60, "maximum excerpt width in columns")
	return cmd
}
