package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

func TestEmbeddingCache_RoundTrip(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	cache, err := NewEmbeddingCache(backend)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	fp := core.FingerprintOf("a story about forgiveness")

	_, err = cache.GetEmbedding(ctx, fp)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	vector := []float32{0.6, 0.8, 0}
	require.NoError(t, cache.PutEmbedding(ctx, fp, vector))

	got, err := cache.GetEmbedding(ctx, fp)
	require.NoError(t, err)
	assert.Equal(t, vector, got)

	// Different content misses.
	_, err = cache.GetEmbedding(ctx, core.FingerprintOf("something else"))
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
