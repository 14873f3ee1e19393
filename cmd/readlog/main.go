// Command readlog serves and renders a personal reading log.
//
// Usage:
//
//	readlog serve [--addr :7443] [--library library.json]
//	readlog render [FILE]
//	readlog batch --root DIR PATTERN
//	readlog list [--library PATH] [--search TEXT]
//	readlog show [--library PATH] [--width N] ID
//	readlog edit [--library PATH] ID
//
// READLOG_ADDR and READLOG_LIBRARY provide defaults for --addr and --library.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

const (
	defaultAddr    = ":7443"
	defaultLibrary = "library.json"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "readlog: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(getenv)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	root := &cobra.Command{
		Use:           "readlog",
		Short:         "A personal reading log with rich-text reviews",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		serveCmd(getenv),
		renderCmd(),
		batchCmd(),
		listCmd(getenv),
		showCmd(getenv),
		editCmd(getenv),
	)
	return root
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
