package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/readnext/core"
)

func TestBookRecordSerialization(t *testing.T) {
	record := &core.BookRecord{
		ISBN:              9780002005883,
		Title:             "Gilead",
		Authors:           "Marilynne Robinson",
		Description:       "A novel about grace and forgiveness",
		Category:          "Fiction",
		ThumbnailURL:      "http://books.example/gilead.jpg",
		LargeThumbnailURL: "http://books.example/gilead.jpg&fife=w800",
		Joy:               0.93,
		Surprise:          0.11,
		Anger:             0.02,
		Fear:              0.05,
		Sadness:           0.31,
	}

	decoded, err := UnmarshalBookRecord(MarshalBookRecord(record))
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestDescriptionEntrySerialization(t *testing.T) {
	entry := &core.DescriptionEntry{
		ISBN:   9780006178736,
		Text:   "A memorable story of love and war",
		Vector: []float32{0.6, 0.8, 0},
	}

	decoded, err := UnmarshalDescriptionEntry(MarshalDescriptionEntry(entry))
	require.NoError(t, err)
	assert.Equal(t, entry, decoded)
}

func TestUnmarshalBookRecord_Truncated(t *testing.T) {
	data := MarshalBookRecord(&core.BookRecord{ISBN: 1, Title: "x"})
	_, err := UnmarshalBookRecord(data[:len(data)/2])
	assert.Error(t, err)
}
