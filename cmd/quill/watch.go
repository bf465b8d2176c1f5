package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/quillkit/quill"
	"github.com/quillkit/quill/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Stream storage change events",
	Long: `Watch observes the storage backend and prints one line per external
change until interrupted. An optional glob pattern filters events by note
ID. Only the file adapter supports watching.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}
		if !doublestar.ValidatePattern(pattern) {
			fatal("Invalid pattern", fmt.Errorf("%q is not a valid glob", pattern))
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		uri, name, err := resolveStorage()
		if err != nil {
			fatal("Failed to resolve storage", err)
		}

		backend, err := quill.OpenBackend(ctx, uri,
			quill.WithAdapter(name),
			quill.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open backend", err)
		}

		watchable, ok := backend.(core.Watchable)
		if !ok {
			fatal("Cannot watch", fmt.Errorf("adapter %q does not support watching", name))
		}

		events, err := watchable.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching for changes. Ctrl-C to stop.")
		for e := range events {
			if !e.Matches(pattern) {
				continue
			}
			fmt.Printf("%s  %s\n", time.Unix(e.Timestamp, 0).Format(time.RFC3339), e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
