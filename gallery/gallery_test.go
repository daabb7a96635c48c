package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/readnext/catalog"
	"github.com/poiesic/readnext/core"
)

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors string
		want    string
	}{
		{"empty", "", ""},
		{"single", "Ursula K. Le Guin", "Ursula K. Le Guin"},
		{"two", "Terry Pratchett;Neil Gaiman", "Terry Pratchett and Neil Gaiman"},
		{"three", "A;B;C", "A, B, and C"},
		{"four", "A;B;C;D", "A, B, C, and D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAuthors(tt.authors))
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	t.Run("short description keeps all words", func(t *testing.T) {
		got := TruncateDescription("a short tale of two cities")
		assert.Equal(t, "a short tale of two cities...", got)
	})

	t.Run("long description truncates to thirty words", func(t *testing.T) {
		words := make([]string, 40)
		for i := range words {
			words[i] = "word"
		}
		got := TruncateDescription(strings.Join(words, " "))
		assert.Equal(t, 30, len(strings.Fields(strings.TrimSuffix(got, "..."))))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("collapses irregular whitespace", func(t *testing.T) {
		got := TruncateDescription("two\twords\n here")
		assert.Equal(t, "two words here...", got)
	})

	t.Run("empty description", func(t *testing.T) {
		assert.Equal(t, "...", TruncateDescription(""))
	})
}

func TestCaption(t *testing.T) {
	record := &core.BookRecord{
		ISBN:        9780141439600,
		Title:       "A Tale of Two Cities",
		Authors:     "Charles Dickens",
		Description: "It was the best of times, it was the worst of times.",
	}
	got := Caption(record)
	assert.Equal(t, "A Tale of Two Cities by Charles Dickens: It was the best of times, it was the worst of times....", got)
}

func TestRender(t *testing.T) {
	records := []*core.BookRecord{
		{
			ISBN:              1,
			Title:             "First",
			Authors:           "A;B",
			Description:       "first description",
			ThumbnailURL:      "http://covers.example/1.jpg",
			LargeThumbnailURL: "http://covers.example/1.jpg&fife=w800",
		},
		{
			ISBN:              2,
			Title:             "Second",
			Authors:           "C",
			Description:       "second description",
			LargeThumbnailURL: catalog.PlaceholderThumbnail,
		},
	}

	items := Render(records)
	assert.Len(t, items, 2)

	assert.Equal(t, "http://covers.example/1.jpg&fife=w800", items[0].ImageURL)
	assert.Equal(t, "First by A and B: first description...", items[0].Caption)

	assert.Equal(t, catalog.PlaceholderThumbnail, items[1].ImageURL)
	assert.Equal(t, "Second by C: second description...", items[1].Caption)
}

func TestRenderEmpty(t *testing.T) {
	items := Render(nil)
	assert.Empty(t, items)
}
