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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/readnext"
	"github.com/poiesic/readnext/ai"
	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/gallery"
	"github.com/poiesic/readnext/ingest"
	"github.com/poiesic/readnext/recommend"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "readnext",
		Usage: "Semantic book recommendations from free-text mood queries",
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
				Name:   "ingest",
				Usage:  "Load a catalog CSV and index its description corpus",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "catalog",
						Usage:    "Path to the catalog CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Usage:    "Path to the ISBN-tagged description corpus",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Embedding worker pool size (0 uses half the CPUs)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of descriptions to embed in each batch",
						Value: 32,
					},
				},
			},
			{
				Name:      "recommend",
				Usage:     "Recommend books for a free-text query",
				ArgsUsage: "QUERY...",
				Action:    recommendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Restrict results to one catalog category",
						Value: core.CategoryAll,
					},
					&cli.StringFlag{
						Name:  "tone",
						Usage: "Re-rank results by emotional tone (Happy, Surprising, Angry, Suspenseful, Sad)",
						Value: string(core.ToneAll),
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "List the category filter domain for an ingested catalog",
				Action: categoriesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
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

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	var opts []ingest.Option
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingest.WithPoolSize(c.Int("pool-size")))
	}
	if c.Int("batch-size") > 0 {
		opts = append(opts, ingest.WithBatchSize(c.Int("batch-size")))
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := lib.Ingest(ctx, c.String("catalog"), c.String("corpus"), opts...); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	count, err := lib.DescriptionRepository().Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d descriptions\n", count)
	return nil
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query text is required")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	recommender, err := lib.NewRecommender()
	if err != nil {
		return err
	}

	records, err := recommender.Recommend(ctx, query, c.String("category"), core.Tone(c.String("tone")))
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidQuery) {
			return fmt.Errorf("invalid query: %w", err)
		}
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No matching books found.")
		return nil
	}

	for i, item := range gallery.Render(records) {
		fmt.Printf("%d: %s\n   %s\n", i+1, item.Caption, item.ImageURL)
	}
	return nil
}

func categoriesCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	categories, err := lib.Categories(context.Background())
	if err != nil {
		return err
	}
	for _, category := range categories {
		fmt.Println(category)
	}
	return nil
}

func openLibrary(c *cli.Context) (*readnext.Library, error) {
	// Commands without embedding flags fall through to the defaults.
	var opts []ai.ConfigOption
	if host := c.String("embedding-host"); host != "" {
		opts = append(opts, ai.WithEmbeddingHost(host))
	}
	if model := c.String("embedding-model"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	}
	aiConfig := ai.NewConfig(opts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	lib, err := readnext.Open(c.String("db"), readnext.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
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
