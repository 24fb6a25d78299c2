package ingest

import (
	"path"
	"strings"
)

// Notification identifies one uploaded object.
type Notification struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// Event is one triggering event: an ordered list of upload notifications.
// Notifications are processed independently of each other.
type Event struct {
	Notifications []Notification `json:"notifications"`
}

// Ack is the fixed-shape acknowledgment returned for every event.
// ProcessedObjects counts notifications seen, not outcomes; per-item failures
// are observable only through logs and tallies.
type Ack struct {
	Message          string `json:"message"`
	ProcessedObjects int    `json:"processed_objects"`
}

// DeriveBatchID derives the batch identifier from an object key by stripping
// its final extension segment. "2024/06/visits-01.json" → "2024/06/visits-01".
func DeriveBatchID(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext)
}
