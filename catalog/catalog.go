package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/readnext/core"
)

// PlaceholderThumbnail is the image reference used when a catalog row has no
// thumbnail of its own.
const PlaceholderThumbnail = "cover-not-found.jpg"

// largeThumbnailSuffix requests a wider rendition from the image host.
const largeThumbnailSuffix = "&fife=w800"

var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing catalog column")

	// ErrMalformedRow indicates a catalog row could not be parsed.
	ErrMalformedRow = errors.New("malformed catalog row")
)

// Column names accepted for each required field. Catalogs exported at
// different stages of the upstream cleaning pipeline disagree on a couple of
// headers, so the loader accepts both spellings.
var columnAliases = map[string][]string{
	"isbn13":      {"isbn13"},
	"title":       {"title"},
	"authors":     {"authors"},
	"description": {"description"},
	"category":    {"simple_categories", "category"},
	"thumbnail":   {"thumbnail", "thumbnail_url"},
	"joy":         {"joy"},
	"surprise":    {"surprise"},
	"anger":       {"anger"},
	"fear":        {"fear"},
	"sadness":     {"sadness"},
}

// LargeThumbnailURL derives the display image reference from a raw thumbnail.
// An absent thumbnail falls back to the placeholder; anything else gets the
// wide-rendition suffix appended verbatim.
func LargeThumbnailURL(thumbnail string) string {
	if strings.TrimSpace(thumbnail) == "" {
		return PlaceholderThumbnail
	}
	return thumbnail + largeThumbnailSuffix
}

// Load parses catalog rows from CSV data with a header row.
// Column order is irrelevant and extra columns are ignored. Any row that
// cannot be parsed fails the whole load; the catalog is authoritative and a
// partially loaded one silently corrupts joins.
func Load(r io.Reader) ([]*core.BookRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []*core.BookRecord
	row := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", row+1, err)
		}
		row++

		record, err := parseRow(cols, fields)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", row, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// LoadFile parses catalog rows from the CSV file at path.
func LoadFile(path string) ([]*core.BookRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func resolveColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		found := false
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				cols[field] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, field)
		}
	}
	return cols, nil
}

func parseRow(cols map[string]int, fields []string) (*core.BookRecord, error) {
	get := func(name string) string {
		i := cols[name]
		if i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	isbn, err := core.ParseISBN(get("isbn13"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	scores := make(map[string]float64, 5)
	for _, name := range []string{"joy", "surprise", "anger", "fear", "sadness"} {
		value, err := strconv.ParseFloat(strings.TrimSpace(get(name)), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s score: %w", ErrMalformedRow, name, err)
		}
		scores[name] = value
	}

	thumbnail := strings.TrimSpace(get("thumbnail"))
	record := &core.BookRecord{
		ISBN:              isbn,
		Title:             get("title"),
		Authors:           get("authors"),
		Description:       get("description"),
		Category:          get("category"),
		ThumbnailURL:      thumbnail,
		LargeThumbnailURL: LargeThumbnailURL(thumbnail),
		Joy:               scores["joy"],
		Surprise:          scores["surprise"],
		Anger:             scores["anger"],
		Fear:              scores["fear"],
		Sadness:           scores["sadness"],
	}

	if err := core.ValidateBookRecord(record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	return record, nil
}
