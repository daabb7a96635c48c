package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/poiesic/readnext/core"
)

// ErrMalformedEntry indicates a corpus record whose leading token could not
// be parsed as an ISBN.
var ErrMalformedEntry = errors.New("malformed corpus entry")

// maxLineSize bounds a single tagged description. Catalog descriptions are a
// few kilobytes at most; 1 MiB leaves generous headroom.
const maxLineSize = 1 << 20

// ParseTagged parses one tagged description record.
//
// A record's text begins with the ISBN as a bare leading token, optionally
// surrounded by a single pair of double-quote characters, followed by
// whitespace and the free-text description:
//
//	9780002005883 "A NOVEL THAT READERS and critics have been eagerly anticipating..."
//	9780002005883 A NOVEL THAT READERS and critics have been eagerly anticipating...
//
// This is the contract the description index and the catalog store agree on;
// a record that violates it is an error, never a silent skip.
func ParseTagged(text string) (core.ISBN, string, error) {
	s := strings.TrimSpace(text)

	// Strip a single pair of surrounding double quotes.
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return 0, "", fmt.Errorf("%w: empty record", ErrMalformedEntry)
	}

	token := s
	rest := ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		token = s[:i]
		rest = strings.TrimSpace(s[i:])
	}

	isbn, err := core.ParseISBN(strings.Trim(token, `"`))
	if err != nil {
		return 0, "", fmt.Errorf("%w: leading token %q: %w", ErrMalformedEntry, token, err)
	}

	return isbn, rest, nil
}

// Load reads tagged description records, one per non-blank line.
// A malformed record fails the whole load; the description index cannot be
// built from a corpus it cannot correlate with the catalog.
func Load(r io.Reader) ([]*core.DescriptionEntry, error) {
	var entries []*core.DescriptionEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		isbn, description, err := ParseTagged(text)
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}

		entries = append(entries, &core.DescriptionEntry{
			ISBN: isbn,
			Text: description,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	return entries, nil
}

// LoadFile reads tagged description records from the file at path.
func LoadFile(path string) ([]*core.DescriptionEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
