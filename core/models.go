package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is the unique identifier of an ingested document.
// It is derived deterministically from the source filename and never changes.
type ID string

// IDFromFilename derives a document ID from a source file path.
// The ID is the base name of the file without its extension, so
// "archive/2019/budget-report.txt" becomes "budget-report".
func IDFromFilename(filename string) ID {
	base := filepath.Base(filename)
	return ID(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Fingerprint is a 64-bit content hash of a document's normalized text.
// Identical text always produces an identical fingerprint, which lets the
// pipeline skip re-embedding documents whose content has not changed.
type Fingerprint uint64

// FingerprintText computes the content fingerprint using BLAKE2b hashing.
func FingerprintText(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// MetadataStatus tracks the outcome of metadata extraction for a document.
// It is the idempotency signal for repeated pipeline runs: only documents in
// MetadataComplete are skipped. A non-empty title is deliberately NOT used as
// the signal, since a partially extracted record can carry a title.
type MetadataStatus int

const (
	// MetadataNone means extraction has not been attempted yet.
	MetadataNone MetadataStatus = iota
	// MetadataComplete means extraction succeeded and the record is final.
	MetadataComplete
	// MetadataFailed means the last extraction attempt failed.
	// The document is retried on the next pipeline run.
	MetadataFailed
)

// Document is one row per ingested source file: provenance plus the
// bibliographic metadata extracted by the generation model.
//
// Every optional field defaults to an empty string or an empty (non-nil)
// list, never null. Downstream consumers of the export surface rely on the
// key always being present with an empty value rather than absent.
type Document struct {
	DocID       ID             `json:"doc_id"`
	Filename    string         `json:"filename"`
	Fingerprint Fingerprint    `json:"-"`
	Status      MetadataStatus `json:"-"`

	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	LevelOfGovernment   string   `json:"level_of_government"`
	ResponsibleProvince string   `json:"responsible_province"`
	ResponsibleCity     string   `json:"responsible_city"`
	Authors             []string `json:"authors"`
	Editors             []string `json:"editors"`
	Publisher           string   `json:"publisher"`
	PublishDate         string   `json:"publish_date"`
	PublisherLocation   string   `json:"publisher_location"`
	CopyrightYear       string   `json:"copyright_year"`
	ISSN                string   `json:"ISSN"`
	ISBN                string   `json:"ISBN"`
	Languages           []string `json:"languages"`
	Category            string   `json:"category"`
	Keywords            []string `json:"keywords"`

	InsertedAt time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// NewDocument creates a Document for a source file with every bibliographic
// field empty. This is the shape a document has after its first embedding,
// before metadata extraction has run. Filename keeps only the base name;
// directory components are call-site detail, not document provenance.
func NewDocument(filename string) *Document {
	return &Document{
		DocID:     IDFromFilename(filename),
		Filename:  filepath.Base(filename),
		Authors:   []string{},
		Editors:   []string{},
		Languages: []string{},
		Keywords:  []string{},
	}
}

// Passage is one retrieval-sized chunk of a document's normalized text,
// embedded independently. ChunkID is 0-based and order-significant; the set
// of chunk IDs stored for a document is always contiguous from 0.
type Passage struct {
	DocID   ID
	ChunkID int
	Content string
	Vector  []float32
}

// Levels of government a document can be attributed to.
const (
	LevelFederal    = "federal"
	LevelProvincial = "provincial"
	LevelMunicipal  = "municipal"
	LevelUnknown    = "unknown"
)

// LevelsOfGovernment lists the valid values for Document.LevelOfGovernment.
var LevelsOfGovernment = []string{
	LevelFederal,
	LevelProvincial,
	LevelMunicipal,
	LevelUnknown,
}

// KnownLanguages lists the language codes a document can be tagged with.
var KnownLanguages = []string{"en", "fr"}

// Categories is the fixed taxonomy for Document.Category.
var Categories = []string{
	"Financial and Operational Reports",
	"Research and Analysis",
	"News and Media",
	"Policies and Directives",
	"Strategic and Operational Plans",
	"Promotional and Educational Material",
}

// MaxKeywords caps the number of keywords stored per document.
const MaxKeywords = 5
