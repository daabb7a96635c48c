package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ISBN is a 13-digit book identifier. It is the primary key of the catalog
// and the payload carried by every description index entry.
type ISBN int64

// ParseISBN parses a bare ISBN-13 token such as "9780002005883".
func ParseISBN(s string) (ISBN, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidISBN
	}
	return ISBN(n), nil
}

// String returns the decimal form of the ISBN.
func (i ISBN) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// CategoryAll is the sentinel category filter value meaning "no filter".
const CategoryAll = "All"

// BookRecord is one catalog row, keyed by ISBN. The emotion scores are
// precomputed upstream and are read-only as far as this module is concerned.
type BookRecord struct {
	ISBN        ISBN
	Title       string
	Authors     string // semicolon-delimited list of names
	Description string
	Category    string // simplified/normalized genre label

	ThumbnailURL      string
	LargeThumbnailURL string // derived at load time, see catalog package

	Joy      float64
	Surprise float64
	Anger    float64
	Fear     float64
	Sadness  float64
}

// DescriptionEntry is one embedded book description. Entries are created
// once at startup from the tagged corpus and are immutable afterwards.
type DescriptionEntry struct {
	ISBN   ISBN
	Text   string
	Vector []float32 // unit-normalized embedding, populated during ingest
}

// Match is a description index hit from vector similarity search.
type Match struct {
	ISBN  ISBN
	Score float32
}

// Fingerprint is a content-derived identifier used to key cached embeddings.
type Fingerprint uint64

// FingerprintOf derives a deterministic fingerprint from text content using
// BLAKE2b hashing. Identical content always produces identical fingerprints.
func FingerprintOf(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}
