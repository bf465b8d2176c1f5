package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill"
	"github.com/quillkit/quill/internal/platform"
)

var (
	verbose bool
	dataDir string
	adapter string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "A local note store with merge-on-return list synchronization",
	Long: `Quill keeps short text notes in a local key-value store.
Every edit is merged back into one sorted collection and snapshotted
atomically, so the persisted blob always mirrors the list you see.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Storage directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: file, sqlite, memory")
}

// resolveStorage merges flags, the optional config file, and defaults into
// a storage URI plus adapter name. Precedence: flags > config file > defaults.
func resolveStorage() (uri, name string, err error) {
	cfg, err := platform.LoadConfig("")
	if err != nil {
		return "", "", err
	}

	name = adapter
	if name == "" {
		name = cfg.Adapter
	}
	if name == "" {
		name = "file"
	}

	uri = dataDir
	if uri == "" {
		uri = cfg.Dir
	}
	if uri == "" {
		uri, err = platform.DefaultDataDir()
		if err != nil {
			return "", "", err
		}
	}

	// The sqlite adapter wants a database file, not a directory.
	if name == "sqlite" && filepath.Ext(uri) == "" {
		uri = filepath.Join(uri, "quill.db")
	}
	return uri, name, nil
}

// openController wires the configured backend and loads the collection.
func openController(ctx context.Context) (*quill.Controller, error) {
	uri, name, err := resolveStorage()
	if err != nil {
		return nil, err
	}
	return quill.New(ctx, uri,
		quill.WithAdapter(name),
		quill.WithLogger(slog.Default()),
	)
}
