package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/notekeeper/internal/alert"
	"github.com/iudanet/notekeeper/internal/auth"
	"github.com/iudanet/notekeeper/internal/cli"
	"github.com/iudanet/notekeeper/internal/iocli"
	"github.com/iudanet/notekeeper/internal/notes"
	"github.com/iudanet/notekeeper/internal/storage/boltdb"
	"github.com/iudanet/notekeeper/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dataDir := flag.String("data", "notekeeper-data", "Path to the local data directory")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.NewCli(io, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(*dataDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	// Открываем BoltDB storage: изображения заметок и локальный аккаунт
	boltStorage, err := boltdb.New(ctx, filepath.Join(*dataDir, "blobs.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open blob store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close blob store", "error", err)
		}
	}()

	// Открываем SQLite storage: записи заметок
	noteStorage, err := sqlite.New(ctx, filepath.Join(*dataDir, "notes.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open note repository: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := noteStorage.Close(); err != nil {
			logger.Error("failed to close note repository", "error", err)
		}
	}()

	imageCache, err := notes.NewImageCache(filepath.Join(*dataDir, "images"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create image cache: %v\n", err)
		os.Exit(1)
	}

	alerts := alert.NewState()
	notesService := notes.NewService(noteStorage, boltStorage, alerts, imageCache, logger)
	authService := auth.NewService(boltStorage, logger)

	// Выполняем команду
	app := cli.NewCli(io, notesService, authService, alerts)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Notekeeper\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
