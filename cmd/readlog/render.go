package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/readlog/fs"
	"github.com/fwojciec/readlog/markdown"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render review markup to HTML",
		Long:  "Render review markup from FILE, or standard input when FILE is omitted, and write the HTML fragment to standard output.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read review: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), markdown.Render(string(data)))
			return err
		},
	}
}

func batchCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "batch PATTERN",
		Short: "Render every review file matching PATTERN to a sibling .html file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := fs.RenderGlob(cmd.Context(), root, args[0], markdown.Render)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory the pattern is matched against")
	return cmd
}
