package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/readnext/ai"
	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

// Default candidate window sizes. The similarity search fetches
// DefaultInitialTopK candidates; at most DefaultFinalTopK survive filtering.
const (
	DefaultInitialTopK = 50
	DefaultFinalTopK   = 16
)

// Recommender turns a free-text mood query plus optional category and tone
// filters into a ranked list of catalog records.
type Recommender struct {
	books       storage.BookRepository
	descs       storage.DescriptionRepository
	embedder    ai.Embedder
	initialTopK int
	finalTopK   int
	logger      *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithInitialTopK sets the similarity-search candidate window.
// Default is DefaultInitialTopK.
func WithInitialTopK(k int) Option {
	return func(r *Recommender) error {
		if k < 1 {
			return fmt.Errorf("initial top-k must be positive, got %d", k)
		}
		r.initialTopK = k
		return nil
	}
}

// WithFinalTopK sets the maximum result count.
// Default is DefaultFinalTopK.
func WithFinalTopK(k int) Option {
	return func(r *Recommender) error {
		if k < 1 {
			return fmt.Errorf("final top-k must be positive, got %d", k)
		}
		r.finalTopK = k
		return nil
	}
}

// NewRecommender creates a new recommender.
func NewRecommender(
	books storage.BookRepository,
	descs storage.DescriptionRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Recommender, error) {
	if books == nil {
		return nil, ErrBookRepositoryRequired
	}
	if descs == nil {
		return nil, ErrDescriptionRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Recommender{
		books:       books,
		descs:       descs,
		embedder:    provider.Embedder(),
		initialTopK: DefaultInitialTopK,
		finalTopK:   DefaultFinalTopK,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recommend returns up to finalTopK catalog records for the query,
// most similar first unless a tone re-ranks them.
func (r *Recommender) Recommend(ctx context.Context, query string, category string, tone core.Tone) ([]*core.BookRecord, error) {
	return r.RecommendWithMonitor(ctx, query, category, tone, nil)
}

// RecommendWithMonitor is Recommend with stage callbacks for observability.
//
// The pipeline order is deliberate and caller-visible: similarity retrieval,
// catalog join, category filter, truncation to the final window, and only
// then the tone re-rank. Sorting after truncation means a tone can reorder
// the selected window but never pull in candidates from outside it.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, query string, category string, tone core.Tone, monitor RecommendMonitor) ([]*core.BookRecord, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if category == "" {
		category = core.CategoryAll
	}
	if tone == "" {
		tone = core.ToneAll
	}

	monitor.Start(query, category, tone)

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query text cannot be empty", ErrInvalidQuery)
	}
	if !tone.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidQuery, core.ErrUnknownTone, tone)
	}

	// 1. Retrieve candidate ISBNs by embedding similarity.
	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: embedding query: %w", ErrRetrieval, err)
	}

	matches, err := r.descs.FindSimilar(ctx, vector, r.initialTopK)
	if err != nil {
		r.logger.Error("error querying description index", "err", err)
		return nil, fmt.Errorf("%w: similarity search: %w", ErrRetrieval, err)
	}
	monitor.AfterSimilaritySearch(matches)

	// 2. Join against the catalog, preserving similarity order.
	// Unresolvable ISBNs are dropped inside GetBooks, never surfaced.
	isbns := make([]core.ISBN, len(matches))
	for i, match := range matches {
		isbns[i] = match.ISBN
	}
	records, err := r.books.GetBooks(ctx, isbns...)
	if err != nil {
		r.logger.Error("error joining candidates against catalog", "candidates", len(isbns), "err", err)
		return nil, fmt.Errorf("joining candidates: %w", err)
	}
	monitor.AfterCatalogJoin(records)

	// 3. Bound the joined set by the candidate window.
	if len(records) > r.initialTopK {
		records = records[:r.initialTopK]
	}

	// 4. Category filter, then truncate to the final window.
	if category != core.CategoryAll {
		filtered := records[:0]
		for _, record := range records {
			if record.Category == category {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}
	if len(records) > r.finalTopK {
		records = records[:r.finalTopK]
	}
	monitor.AfterCategoryFilter(records)

	// 5. Tone re-rank of the already-truncated window, stable on ties.
	if _, ok := tone.Score(&core.BookRecord{}); ok {
		sort.SliceStable(records, func(i, j int) bool {
			a, _ := tone.Score(records[i])
			b, _ := tone.Score(records[j])
			return a > b
		})
	}

	monitor.Finish(records)
	return records, nil
}
