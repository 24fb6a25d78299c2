package badger

import (
	"fmt"

	"github.com/poiesic/carelog/core"
)

// Key prefixes for different data types
const (
	triageRecordPrefix = "trirec"
	clientDigestPrefix = "digrec"
)

// makeTriageKey generates a composite key for a triage item.
// Format: prefix:batchID:recordID. Batch-scoped so re-runs of a batch
// overwrite their own items and never collide with other batches.
func makeTriageKey(batchID string, recordID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", triageRecordPrefix, batchID, recordID))
}

// makeTriageBatchPrefix generates the scan prefix for all of a batch's items.
func makeTriageBatchPrefix(batchID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", triageRecordPrefix, batchID))
}

// makeDigestKey generates a composite key for a client digest.
// Format: prefix:batchID:clientID
func makeDigestKey(batchID string, clientID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", clientDigestPrefix, batchID, clientID))
}

// makeDigestBatchPrefix generates the scan prefix for all of a batch's digests.
func makeDigestBatchPrefix(batchID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", clientDigestPrefix, batchID))
}
