package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/carelog/core"
)

// sampleRecordLimit bounds how many records are logged at debug level per batch.
const sampleRecordLimit = 3

// ParseBatch decodes the uploaded object's content into a Batch.
// The content must be a JSON array of visit records; absent fields decode to
// empty strings.
func ParseBatch(batchID string, content []byte) (*core.Batch, error) {
	var records []core.VisitRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBatch, err)
	}

	logSampleRecords(batchID, records)

	return &core.Batch{
		ID:      batchID,
		Records: records,
	}, nil
}

// logSampleRecords logs the first few records of a batch for debugging.
func logSampleRecords(batchID string, records []core.VisitRecord) {
	logger := slog.Default()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	n := min(len(records), sampleRecordLimit)
	for i := 0; i < n; i++ {
		logger.Debug("sample record",
			"batchID", batchID,
			"index", i,
			"client", records[i].Client,
			"visitDate", records[i].VisitDate,
			"noteLength", len(records[i].Note))
	}
	if len(records) > sampleRecordLimit {
		logger.Debug("more records in batch",
			"batchID", batchID, "remaining", len(records)-sampleRecordLimit)
	}
}
