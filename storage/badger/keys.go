package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/civicarchive/govdoc/core"
)

// Key prefixes for different data types
const (
	documentPrefix = "docrec"
	passagePrefix  = "pasrec"
	vectorDimKey   = "pasdim"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentPrefix, id))
}

// makePassageKey generates a composite key for a passage row.
// Format: prefix:docID:chunkID, with the chunk id written in BigEndian so
// lexicographic iteration yields passages in chunk order.
func makePassageKey(docID core.ID, chunkID int) []byte {
	prefix := makePassageDocPrefix(docID)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkID))
	return buf
}

// makePassageDocPrefix generates the key prefix covering every passage row
// of a single document.
func makePassageDocPrefix(docID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:", passagePrefix, docID))
}
