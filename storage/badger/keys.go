package badger

import (
	"fmt"

	"github.com/poiesic/readnext/core"
)

// Key prefixes for different data types
const (
	bookRecordPrefix  = "bookrec"
	descriptionPrefix = "descrec"
	embeddingPrefix   = "embvec"
)

// makeBookKey generates a key for a catalog record by ISBN.
func makeBookKey(isbn core.ISBN) []byte {
	return []byte(fmt.Sprintf("%s:%d", bookRecordPrefix, isbn))
}

// makeDescriptionKey generates a key for a description entry by ISBN.
func makeDescriptionKey(isbn core.ISBN) []byte {
	return []byte(fmt.Sprintf("%s:%d", descriptionPrefix, isbn))
}

// makeEmbeddingKey generates a key for a cached embedding by fingerprint.
func makeEmbeddingKey(fp core.Fingerprint) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, fp))
}
