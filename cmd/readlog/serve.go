package main

import (
	"log/slog"

	readloghttp "github.com/fwojciec/readlog/http"
	readlogjson "github.com/fwojciec/readlog/json"
	"github.com/fwojciec/readlog/markdown"
	"github.com/spf13/cobra"
)

func serveCmd(getenv func(string) string) *cobra.Command {
	var addr, library string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reading log API, live preview and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			store, err := readlogjson.Open(library)
			if err != nil {
				return err
			}
			logger.Info("library opened", "path", library)
			srv := readloghttp.NewServer(store, markdown.Render,
				readloghttp.WithLogger(logger),
				readloghttp.WithVersion(version),
			)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr(getenv, "READLOG_ADDR", defaultAddr), "listen address")
	cmd.Flags().StringVar(&library, "library", envOr(getenv, "READLOG_LIBRARY", defaultLibrary), "path to the library file")
	return cmd
}
