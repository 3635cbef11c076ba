package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/auth"
	"github.com/iudanet/gophtext/internal/client/cli"
	"github.com/iudanet/gophtext/internal/client/editor"
	"github.com/iudanet/gophtext/internal/client/iocli"
	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/client/storage/boltdb"
	"github.com/iudanet/gophtext/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOrDefault("GOPHTEXT_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOrDefault("GOPHTEXT_DB", "gophtext-client.db"), "Path to local database")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	accessKey := flag.String("access-key", "", "Site access key (not recommended)")
	accessKeyFile := flag.String("access-key-file", "", "Path to file containing site access key")
	flag.Usage = func() { cli.PrintUsage(stdio) }

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	// Контекст отменяется по Ctrl+C, это завершает watch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		if errors.Is(err, storage.ErrStorageLocked) {
			fmt.Fprintln(os.Stderr, "Database is in use by another gophtext process (is watch running?)")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, *serverURL, logger)
	editorService := editor.NewService(boltStorage, logger)
	syncService := sync.NewService(apiClient, editorService, boltStorage, sync.DefaultRetryPolicy, logger)

	c := cli.New(stdio, apiClient, authService, editorService, syncService, cli.AccessKeySources{
		FromFile: *accessKeyFile,
		FromArgs: *accessKey,
	})

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func printVersion() {
	fmt.Printf("GophText Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
