package badger

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

func newTestDescRepo(t *testing.T) storage.DescriptionRepository {
	t.Helper()
	bookRepo, descRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		descRepo.Close()
		bookRepo.Close()
		backend.Close()
	})
	return descRepo
}

// axisEntry builds a unit-vector entry whose similarity to the unit query
// vector [1, 0, 0] equals score.
func axisEntry(isbn core.ISBN, score float32) *core.DescriptionEntry {
	other := float32(math.Sqrt(float64(1 - score*score)))
	return &core.DescriptionEntry{
		ISBN:   isbn,
		Text:   "entry",
		Vector: []float32{score, other, 0},
	}
}

func TestDescriptionRepository_FindSimilar_Ordering(t *testing.T) {
	repo := newTestDescRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddEntries(ctx,
		axisEntry(1000000000001, 0.2),
		axisEntry(1000000000002, 0.9),
		axisEntry(1000000000003, 0.5),
	))

	matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, core.ISBN(1000000000002), matches[0].ISBN)
	assert.Equal(t, core.ISBN(1000000000003), matches[1].ISBN)
	assert.Equal(t, core.ISBN(1000000000001), matches[2].ISBN)
	assert.InDelta(t, 0.9, matches[0].Score, 1e-5)
}

func TestDescriptionRepository_FindSimilar_Limit(t *testing.T) {
	repo := newTestDescRepo(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.AddEntries(ctx, axisEntry(core.ISBN(1000000000001+i), float32(i)*0.09)))
	}

	matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 4)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestDescriptionRepository_FindSimilar_TieBreaksOnISBN(t *testing.T) {
	repo := newTestDescRepo(t)
	ctx := context.Background()

	// Identical vectors, identical scores: order must be deterministic.
	require.NoError(t, repo.AddEntries(ctx,
		axisEntry(1000000000003, 0.5),
		axisEntry(1000000000001, 0.5),
		axisEntry(1000000000002, 0.5),
	))

	matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, core.ISBN(1000000000001), matches[0].ISBN)
	assert.Equal(t, core.ISBN(1000000000002), matches[1].ISBN)
	assert.Equal(t, core.ISBN(1000000000003), matches[2].ISBN)
}

func TestDescriptionRepository_FindSimilar_Empty(t *testing.T) {
	repo := newTestDescRepo(t)

	matches, err := repo.FindSimilar(context.Background(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDescriptionRepository_AddEntries_RequiresVector(t *testing.T) {
	repo := newTestDescRepo(t)

	err := repo.AddEntries(context.Background(), &core.DescriptionEntry{
		ISBN: 1000000000001,
		Text: "no vector",
	})
	assert.True(t, errors.Is(err, storage.ErrMissingVector))
}

func TestDescriptionRepository_Count(t *testing.T) {
	repo := newTestDescRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.AddEntries(ctx,
		axisEntry(1000000000001, 0.1),
		axisEntry(1000000000002, 0.2),
	))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
