// Copyright 2026 Civic Archive Project
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
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	govdoc "github.com/civicarchive/govdoc"
	"github.com/civicarchive/govdoc/config"
	"github.com/civicarchive/govdoc/ingest"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "govdoc",
		Usage: "Government document ingestion, embedding and metadata extraction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Embed documents and extract their metadata",
				ArgsUsage: "<file-or-directory> [...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the database directory (overrides config)",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Re-embed and re-extract even for unchanged documents",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (overrides config)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (overrides config)",
					},
					&cli.StringFlag{
						Name:  "generator-host",
						Usage: "Generation service host URL (overrides config)",
					},
					&cli.StringFlag{
						Name:  "generator-model",
						Usage: "Generation model name (overrides config)",
					},
					&cli.IntFlag{
						Name:  "context-window",
						Usage: "Generation model context window in tokens (overrides config)",
					},
					&cli.IntFlag{
						Name:  "chunk-min",
						Usage: "Minimum chunk size in words (overrides config)",
					},
					&cli.IntFlag{
						Name:  "chunk-max",
						Usage: "Maximum chunk size in words (overrides config)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of documents processed in parallel (0 = auto)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed service calls",
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 10,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Dump the document table to CSV or JSON",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the database directory (overrides config)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (csv or json)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// applyFlagOverrides lets command-line flags win over file values.
func applyFlagOverrides(c *cli.Context, cfg *config.AppConfig) {
	if v := c.String("embedding-host"); v != "" {
		cfg.Models.EmbeddingHost = v
	}
	if v := c.String("embedding-model"); v != "" {
		cfg.Models.EmbeddingModel = v
	}
	if v := c.String("generator-host"); v != "" {
		cfg.Models.GeneratorHost = v
	}
	if v := c.String("generator-model"); v != "" {
		cfg.Models.GeneratorModel = v
	}
	if v := c.Int("context-window"); v > 0 {
		cfg.Models.ContextWindow = v
	}
	if v := c.Int("chunk-min"); v > 0 {
		cfg.Chunking.MinWords = v
	}
	if v := c.Int("chunk-max"); v > 0 {
		cfg.Chunking.MaxWords = v
	}
}

func loadConfig(c *cli.Context) (*config.AppConfig, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

func ingestCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one file or directory is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	applyFlagOverrides(c, cfg)

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	sources, err := readSources(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no .txt files found")
	}

	aiConfig := cfg.AIConfig()
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := govdoc.NewDatabase(dbPath, govdoc.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	policy := cfg.RetryPolicy()
	if c.IsSet("max-retries") {
		policy.MaxAttempts = c.Int("max-retries")
	}
	if c.IsSet("retry-delay") {
		policy.BaseDelay = c.Duration("retry-delay")
	}

	opts := []ingest.Option{
		ingest.WithChunkBounds(cfg.Chunking.MinWords, cfg.Chunking.MaxWords),
		ingest.WithRetryPolicy(policy),
		ingest.WithForceRebuild(c.Bool("force")),
		ingest.WithProgress(ingest.NewProgressTracker(os.Stderr, len(sources), c.Int("report-interval"))),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingest.WithPoolSize(size))
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("creating pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(sources))
	fmt.Fprintln(os.Stderr)

	summary, runErr := pipeline.Run(ctx, sources)

	fmt.Fprintf(os.Stderr, "Embedded: %d (skipped %d, failed %d)\n",
		summary.Embedded, summary.EmbedSkipped, summary.EmbedFailed)
	fmt.Fprintf(os.Stderr, "Metadata: %d (skipped %d, failed %d)\n",
		summary.MetadataExtracted, summary.MetadataSkipped, summary.MetadataFailed)

	if runErr != nil {
		return fmt.Errorf("ingestion failed: %w", runErr)
	}
	return nil
}

func exportCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	db, err := govdoc.NewDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exporter, err := db.NewExporter()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(c.String("format")) {
	case "csv":
		return exporter.WriteCSV(ctx, out)
	case "json":
		return exporter.WriteJSON(ctx, out)
	default:
		return fmt.Errorf("invalid format %q: must be csv or json", c.String("format"))
	}
}

// readSources reads every named file, and every .txt file found by walking
// every named directory.
func readSources(args []string) ([]ingest.Source, error) {
	var sources []ingest.Source

	addFile := func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, ingest.Source{Filename: path, Text: string(data)})
		return nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := addFile(arg); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".txt") {
				return nil
			}
			return addFile(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
