package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/readnext/core"
)

const sampleCSV = `isbn13,title,authors,description,simple_categories,thumbnail,joy,surprise,anger,fear,sadness
9780002005883,Gilead,Marilynne Robinson,A novel about grace and forgiveness,Fiction,http://books.example/gilead.jpg,0.93,0.11,0.02,0.05,0.31
9780006178736,Rage of Angels,Sidney Sheldon,A memorable story of love and war,Fiction,,0.22,0.45,0.61,0.73,0.12
`

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	gilead := records[0]
	assert.Equal(t, core.ISBN(9780002005883), gilead.ISBN)
	assert.Equal(t, "Gilead", gilead.Title)
	assert.Equal(t, "Marilynne Robinson", gilead.Authors)
	assert.Equal(t, "Fiction", gilead.Category)
	assert.Equal(t, 0.93, gilead.Joy)
	assert.Equal(t, 0.73, records[1].Fear)
}

func TestLoad_ThumbnailDerivation(t *testing.T) {
	records, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "http://books.example/gilead.jpg&fife=w800", records[0].LargeThumbnailURL)
	// Absent thumbnail falls back to the placeholder.
	assert.Equal(t, PlaceholderThumbnail, records[1].LargeThumbnailURL)
}

func TestLargeThumbnailURL(t *testing.T) {
	assert.Equal(t, "http://x&fife=w800", LargeThumbnailURL("http://x"))
	assert.Equal(t, PlaceholderThumbnail, LargeThumbnailURL(""))
	assert.Equal(t, PlaceholderThumbnail, LargeThumbnailURL("   "))
}

func TestLoad_ColumnAliasesAndOrder(t *testing.T) {
	csv := `title,category,thumbnail_url,isbn13,authors,description,sadness,fear,anger,surprise,joy,extra
Gilead,Fiction,http://x,9780002005883,Marilynne Robinson,desc,0.1,0.2,0.3,0.4,0.5,ignored
`
	records, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Fiction", records[0].Category)
	assert.Equal(t, 0.5, records[0].Joy)
	assert.Equal(t, 0.1, records[0].Sadness)
	assert.Equal(t, "http://x&fife=w800", records[0].LargeThumbnailURL)
}

func TestLoad_MissingColumn(t *testing.T) {
	csv := "isbn13,title,authors,description,thumbnail,joy,surprise,anger,fear,sadness\n"
	_, err := Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "category")
}

func TestLoad_MalformedRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad isbn", `not-an-isbn,Gilead,A,desc,Fiction,,0.1,0.1,0.1,0.1,0.1`},
		{"bad score", `9780002005883,Gilead,A,desc,Fiction,,high,0.1,0.1,0.1,0.1`},
		{"empty title", `9780002005883,,A,desc,Fiction,,0.1,0.1,0.1,0.1,0.1`},
	}

	header := "isbn13,title,authors,description,simple_categories,thumbnail,joy,surprise,anger,fear,sadness\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRow))
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}
