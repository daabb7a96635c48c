package gallery

import (
	"fmt"
	"strings"

	"github.com/poiesic/readnext/core"
)

// captionWords is the number of description words kept in a caption.
const captionWords = 30

// Item is one renderable gallery entry: a cover image and its caption.
type Item struct {
	ImageURL string
	Caption  string
}

// Render converts ranked catalog records into display items, preserving
// order. Captions read "{title} by {authors}: {truncated description}".
func Render(records []*core.BookRecord) []Item {
	items := make([]Item, len(records))
	for i, record := range records {
		items[i] = Item{
			ImageURL: record.LargeThumbnailURL,
			Caption:  Caption(record),
		}
	}
	return items
}

// Caption formats a single record's caption line.
func Caption(record *core.BookRecord) string {
	return fmt.Sprintf("%s by %s: %s",
		record.Title,
		FormatAuthors(record.Authors),
		TruncateDescription(record.Description))
}

// TruncateDescription keeps the first captionWords whitespace-separated
// words and appends an ellipsis. The ellipsis is appended even when the
// description is already short.
func TruncateDescription(description string) string {
	words := strings.Fields(description)
	if len(words) > captionWords {
		words = words[:captionWords]
	}
	return strings.Join(words, " ") + "..."
}

// FormatAuthors renders a semicolon-delimited author list for display.
// Two authors join with "and"; three or more use a comma-separated list
// with a final "and".
func FormatAuthors(authors string) string {
	parts := strings.Split(authors, ";")
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return fmt.Sprintf("%s and %s", parts[0], parts[1])
	default:
		return fmt.Sprintf("%s, and %s",
			strings.Join(parts[:len(parts)-1], ", "),
			parts[len(parts)-1])
	}
}
