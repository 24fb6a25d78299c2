package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted items.
// It is generated deterministically from item content so that repeated runs
// over the same batch produce the same keys.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is the urgency classification assigned to a visit note.
type Category int

const (
	// CategoryRed marks urgent or critical issues requiring immediate attention.
	CategoryRed Category = iota + 1
	// CategoryAmber marks moderate concerns that need follow-up.
	CategoryAmber
	// CategoryGreen marks routine visits with no significant concerns.
	CategoryGreen
)

// String returns the lowercase keyword for the category.
func (c Category) String() string {
	switch c {
	case CategoryRed:
		return "red"
	case CategoryAmber:
		return "amber"
	case CategoryGreen:
		return "green"
	default:
		return "unknown"
	}
}

// ParseCategoryReply maps free-text model output to a Category by
// case-insensitive substring search, checking keywords in priority order
// red, amber, green. Returns false if no keyword is present.
func ParseCategoryReply(reply string) (Category, bool) {
	reply = strings.ToLower(reply)
	switch {
	case strings.Contains(reply, "red"):
		return CategoryRed, true
	case strings.Contains(reply, "amber"):
		return CategoryAmber, true
	case strings.Contains(reply, "green"):
		return CategoryGreen, true
	default:
		return 0, false
	}
}

// ClientUnknown is the sentinel client identifier used when a record carries
// no client field.
const ClientUnknown = "Unknown"

// VisitRecord is one input unit from an uploaded batch file.
// Absent fields decode to empty strings; records are never mutated after parsing.
type VisitRecord struct {
	Note           string `json:"note"`
	Client         string `json:"client"`
	CarePro        string `json:"care_pro"`
	VisitDate      string `json:"visit_date"` // ISO-like, lexically sortable
	Classification string `json:"classification,omitempty"`
}

// ClientName returns the record's client identifier, substituting
// ClientUnknown when the field is absent.
func (r *VisitRecord) ClientName() string {
	if r.Client == "" {
		return ClientUnknown
	}
	return r.Client
}

// HasNote reports whether the record carries a non-whitespace note.
func (r *VisitRecord) HasNote() bool {
	return strings.TrimSpace(r.Note) != ""
}

// Batch is the ordered set of records parsed from one uploaded object.
// It exists only for the duration of one event and is never persisted as a unit.
type Batch struct {
	ID      string
	Records []VisitRecord
}

// TriageItem is the durable output of classifying one visit record.
// Keyed by (RecordID, BatchID) so repeated runs for the same batch do not
// collide with other batches.
type TriageItem struct {
	RecordID       ID
	Index          int
	BatchID        string
	Classification Category
	Client         string
	CarePro        string
	VisitDate      string
	Note           string
	GeneratedAt    time.Time // Write-pipeline time, not visit time
}

// TriageRecordID derives the stable ID for the record at the given index of a batch.
func TriageRecordID(batchID string, index int) ID {
	return IDFromContent(fmt.Sprintf("%s/%d", batchID, index))
}

// ClientDigest is the durable output of summarising one client's records
// within a batch. Keyed by (ClientID, BatchID).
type ClientDigest struct {
	ClientID        ID
	Client          string
	BatchID         string
	LatestVisitDate string
	VisitCount      int
	Summary         string
	GeneratedAt     time.Time
}

// DigestClientID derives the stable ID for a client name.
func DigestClientID(client string) ID {
	return IDFromContent(client)
}

// Tally is the per-category count of classified units in one batch.
// It is accumulated after all workers have returned, never shared between them.
type Tally struct {
	Red   int
	Amber int
	Green int
}

// Add increments the count for the given category.
func (t *Tally) Add(c Category) {
	switch c {
	case CategoryRed:
		t.Red++
	case CategoryAmber:
		t.Amber++
	case CategoryGreen:
		t.Green++
	}
}

// Count returns the count for the given category.
func (t *Tally) Count(c Category) int {
	switch c {
	case CategoryRed:
		return t.Red
	case CategoryAmber:
		return t.Amber
	case CategoryGreen:
		return t.Green
	default:
		return 0
	}
}

// Total returns the number of classified units across all categories.
func (t *Tally) Total() int {
	return t.Red + t.Amber + t.Green
}
