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

func newTestBookRepo(t *testing.T) storage.BookRepository {
	t.Helper()
	bookRepo, descRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		descRepo.Close()
		bookRepo.Close()
		backend.Close()
	})
	return bookRepo
}

func testBook(isbn core.ISBN, title, category string) *core.BookRecord {
	return &core.BookRecord{
		ISBN:     isbn,
		Title:    title,
		Category: category,
	}
}

func TestBookRepository_PutAndGet(t *testing.T) {
	repo := newTestBookRepo(t)
	ctx := context.Background()

	record := &core.BookRecord{
		ISBN:        9780002005883,
		Title:       "Gilead",
		Authors:     "Marilynne Robinson",
		Description: "A novel about grace",
		Category:    "Fiction",
		Joy:         0.93,
	}
	require.NoError(t, repo.PutBooks(ctx, record))

	got, err := repo.GetBook(ctx, 9780002005883)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestBookRepository_GetBook_NotFound(t *testing.T) {
	repo := newTestBookRepo(t)

	_, err := repo.GetBook(context.Background(), 9999999999999)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestBookRepository_PutBooks_RejectsInvalid(t *testing.T) {
	repo := newTestBookRepo(t)

	err := repo.PutBooks(context.Background(), &core.BookRecord{ISBN: 1})
	assert.True(t, errors.Is(err, core.ErrInvalidBookRecord))
}

func TestBookRepository_GetBooks_OrderAndDrops(t *testing.T) {
	repo := newTestBookRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutBooks(ctx,
		testBook(1000000000001, "One", "Fiction"),
		testBook(1000000000002, "Two", "History"),
		testBook(1000000000003, "Three", "Fiction"),
	))

	// Input order preserved, duplicate collapsed to first occurrence,
	// unknown ISBN silently dropped.
	records, err := repo.GetBooks(ctx,
		1000000000003,
		1000000000001,
		9999999999999,
		1000000000003,
		1000000000002,
	)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Three", records[0].Title)
	assert.Equal(t, "One", records[1].Title)
	assert.Equal(t, "Two", records[2].Title)
}

func TestBookRepository_GetBooks_Empty(t *testing.T) {
	repo := newTestBookRepo(t)

	records, err := repo.GetBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBookRepository_Categories(t *testing.T) {
	repo := newTestBookRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutBooks(ctx,
		testBook(1000000000001, "One", "Nonfiction"),
		testBook(1000000000002, "Two", "Fiction"),
		testBook(1000000000003, "Three", "Fiction"),
		testBook(1000000000004, "Four", "Children's Fiction"),
	))
	// A record with no category is skipped.
	require.NoError(t, repo.PutBooks(ctx, testBook(1000000000005, "Five", "")))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Children's Fiction", "Fiction", "Nonfiction"}, categories)
}
