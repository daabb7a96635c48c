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

package readnext

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/readnext/ai"
	"github.com/poiesic/readnext/ai/openai"
	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/ingest"
	"github.com/poiesic/readnext/recommend"
	"github.com/poiesic/readnext/storage"
	"github.com/poiesic/readnext/storage/badger"
)

// Library bundles the catalog store, the description index, the embedding
// cache, and the AI provider behind one handle.
type Library struct {
	backend  *badger.Backend
	bookRepo storage.BookRepository
	descRepo storage.DescriptionRepository
	cache    storage.EmbeddingCache
	provider ai.AIProvider
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the embedding endpoint configuration.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a ready-made AI provider, bypassing the embedding
// endpoint configuration. Used by tests to substitute a mock.
func WithProvider(provider ai.AIProvider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// Open opens or creates a library at the given path.
func Open(filePath string, opts ...LibraryOption) (*Library, error) {
	return open(filePath, false, opts...)
}

// OpenInMemory opens a non-persistent library. Used by tests.
func OpenInMemory(opts ...LibraryOption) (*Library, error) {
	return open("", true, opts...)
}

func open(filePath string, inMemory bool, opts ...LibraryOption) (*Library, error) {
	// Apply options
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	// Create book repository
	bookRepo, err := badger.NewBookRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create description repository
	descRepo, err := badger.NewDescriptionRepository(backend)
	if err != nil {
		bookRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create embedding cache
	cache, err := badger.NewEmbeddingCache(backend)
	if err != nil {
		descRepo.Close()
		bookRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings unless one was injected
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			cache.Close()
			descRepo.Close()
			bookRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Library{
		backend:  backend,
		bookRepo: bookRepo,
		descRepo: descRepo,
		cache:    cache,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (l *Library) Close() error {
	// Close AI provider first
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := l.cache.Close(); err != nil {
		l.logger.Error("error closing embedding cache", "err", err)
		return err
	}
	if err := l.descRepo.Close(); err != nil {
		l.logger.Error("error closing description repository", "err", err)
		return err
	}
	if err := l.bookRepo.Close(); err != nil {
		l.logger.Error("error closing book repository", "err", err)
		return err
	}

	// Close backend
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (l *Library) BookRepository() storage.BookRepository {
	return l.bookRepo
}

func (l *Library) DescriptionRepository() storage.DescriptionRepository {
	return l.descRepo
}

func (l *Library) EmbeddingCache() storage.EmbeddingCache {
	return l.cache
}

func (l *Library) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	opts = append([]ingest.Option{ingest.WithEmbeddingCache(l.cache)}, opts...)
	return ingest.NewPipeline(l.bookRepo, l.descRepo, l.provider, opts...)
}

func (l *Library) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	return recommend.NewRecommender(l.bookRepo, l.descRepo, l.provider, opts...)
}

// Ingest loads the catalog CSV and indexes the tagged description corpus
// from the given files. Either pass aborts on the first malformed record.
func (l *Library) Ingest(ctx context.Context, catalogPath, corpusPath string, opts ...ingest.Option) error {
	pipeline, err := l.NewIngestPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	catalogFile, err := os.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	loaded, err := pipeline.LoadCatalog(ctx, catalogFile)
	catalogFile.Close()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	l.logger.Info("catalog loaded", "records", loaded)

	corpusFile, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("opening corpus: %w", err)
	}
	indexed, err := pipeline.IndexDescriptions(ctx, corpusFile)
	corpusFile.Close()
	if err != nil {
		return fmt.Errorf("indexing descriptions: %w", err)
	}
	l.logger.Info("descriptions indexed", "entries", indexed)

	return nil
}

// Categories returns the category filter domain: core.CategoryAll followed
// by every distinct category in the catalog, sorted.
func (l *Library) Categories(ctx context.Context) ([]string, error) {
	distinct, err := l.bookRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{core.CategoryAll}, distinct...), nil
}

// Tones returns the tone filter domain, core.ToneAll first.
func (l *Library) Tones() []core.Tone {
	return core.Tones()
}
