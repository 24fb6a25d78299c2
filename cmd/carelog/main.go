// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/carelog"
	"github.com/poiesic/carelog/ai"
	"github.com/poiesic/carelog/core"
	"github.com/poiesic/carelog/ingest"
	"github.com/poiesic/carelog/storage/badger"
	"github.com/poiesic/carelog/watch"
)

func main() {
	// Load .env if present; real environment wins.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "carelog",
		Usage: "Triage and summarise home-care visit notes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Classify every note of a batch file by urgency",
				Action: classifyCommand,
				Flags:  batchFlags(),
			},
			{
				Name:   "summarise",
				Usage:  "Summarise a batch file's notes per client",
				Action: summariseCommand,
				Flags:  batchFlags(),
			},
			{
				Name:   "watch",
				Usage:  "Watch a drop directory and process batch files as they arrive",
				Action: watchCommand,
				Flags: append(batchModeFlags(),
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Processing mode (classify, summarise)",
						Value: "classify",
					},
				),
			},
			{
				Name:   "report",
				Usage:  "Print the stored results for a batch",
				Action: reportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "batch",
						Aliases:  []string{"b"},
						Usage:    "Batch identifier to report on",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// batchModeFlags are the flags shared by every command that runs the pipeline.
func batchModeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "store-root",
			Usage:    "Object store root directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "bucket",
			Usage:    "Bucket (directory under the store root)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Model service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "Model name",
			Value: "qwen2.5:3b",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Worker pool size (0 uses the default)",
		},
	}
}

// batchFlags adds the object keys to process.
func batchFlags() []cli.Flag {
	return append(batchModeFlags(),
		&cli.StringSliceFlag{
			Name:     "key",
			Aliases:  []string{"k"},
			Usage:    "Object key to process (repeatable)",
			Required: true,
		},
	)
}

func classifyCommand(c *cli.Context) error {
	return runBatch(c, ingest.ModeTriage)
}

func summariseCommand(c *cli.Context) error {
	return runBatch(c, ingest.ModeDigest)
}

func runBatch(c *cli.Context, mode ingest.Mode) error {
	ctx := context.Background()

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	driver, err := svc.NewDriver(mode)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	bucket := c.String("bucket")
	var notifications []ingest.Notification
	for _, key := range c.StringSlice("key") {
		notifications = append(notifications, ingest.Notification{Bucket: bucket, Key: key})
	}

	ack := driver.HandleEvent(ctx, ingest.Event{Notifications: notifications})
	fmt.Fprintf(os.Stderr, "%s Processed objects: %d\n", ack.Message, ack.ProcessedObjects)

	return nil
}

func watchCommand(c *cli.Context) error {
	mode, err := parseMode(c.String("mode"))
	if err != nil {
		return err
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	driver, err := svc.NewDriver(mode)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	bucket := c.String("bucket")
	watcher, err := watch.NewWatcher(bucket)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir := filepath.Join(c.String("store-root"), bucket)
	notifications, err := watcher.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s (%s mode). Ctrl-C to stop.\n", dir, mode)

	for notification := range notifications {
		ack := driver.HandleEvent(ctx, ingest.Event{
			Notifications: []ingest.Notification{notification},
		})
		fmt.Fprintf(os.Stderr, "%s Processed objects: %d\n", ack.Message, ack.ProcessedObjects)
	}

	return nil
}

func reportCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	batchID := c.String("batch")

	triageRepo := badger.NewTriageRepository(backend)
	items, err := triageRepo.GetTriageItemsByBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("failed to read triage items: %w", err)
	}

	digestRepo := badger.NewDigestRepository(backend)
	digests, err := digestRepo.GetClientDigestsByBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("failed to read client digests: %w", err)
	}

	if len(items) == 0 && len(digests) == 0 {
		fmt.Printf("No results stored for batch %s\n", batchID)
		return nil
	}

	if len(items) > 0 {
		var tally core.Tally
		fmt.Printf("Triage items for batch %s:\n", batchID)
		for _, item := range items {
			tally.Add(item.Classification)
			fmt.Printf("  [%s] %s (%s, visited %s)\n",
				strings.ToUpper(item.Classification.String()), item.Client, item.CarePro, item.VisitDate)
		}
		fmt.Printf("Tally: %d red, %d amber, %d green (%d total)\n",
			tally.Red, tally.Amber, tally.Green, tally.Total())
	}

	if len(digests) > 0 {
		fmt.Printf("Client digests for batch %s:\n", batchID)
		for _, digest := range digests {
			fmt.Printf("  %s (%d visits, latest %s)\n    %s\n",
				digest.Client, digest.VisitCount, digest.LatestVisitDate, digest.Summary)
		}
	}

	return nil
}

func newService(c *cli.Context) (*carelog.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []carelog.ServiceOption{carelog.WithAIConfig(aiConfig)}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, carelog.WithPoolSize(size))
	}

	svc, err := carelog.NewService(c.String("db"), c.String("store-root"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open service: %w", err)
	}
	return svc, nil
}

func parseMode(s string) (ingest.Mode, error) {
	switch strings.ToLower(s) {
	case "classify", "triage":
		return ingest.ModeTriage, nil
	case "summarise", "summarize", "digest":
		return ingest.ModeDigest, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: must be classify or summarise", s)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
