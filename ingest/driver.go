// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/poiesic/carelog/core"
	"github.com/poiesic/carelog/objectstore"
	"github.com/poiesic/carelog/pipeline"
	"github.com/poiesic/carelog/storage"
)

// shortBatchIDLength is the length at or below which a derived batch ID is
// logged as suspicious. IDs that short usually mean a misnamed upload.
const shortBatchIDLength = 5

// Mode selects which aggregation a Driver runs over each batch.
type Mode int

const (
	// ModeTriage classifies every record by urgency.
	ModeTriage Mode = iota + 1
	// ModeDigest summarises records per client.
	ModeDigest
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTriage:
		return "triage"
	case ModeDigest:
		return "digest"
	default:
		return "unknown"
	}
}

// Driver handles upload events end to end: fetch, parse, aggregate, persist.
// Notifications are processed independently; one bad object never blocks the
// rest of the event.
type Driver struct {
	mode    Mode
	store   objectstore.Reader
	pipe    *pipeline.Pipeline
	triage  *storage.TriagePersister
	digests *storage.DigestPersister
	logger  *slog.Logger
}

// NewDriver creates a Driver for the given mode. The persister matching the
// mode must be non-nil; the other may be nil.
func NewDriver(mode Mode, store objectstore.Reader, pipe *pipeline.Pipeline, triage *storage.TriagePersister, digests *storage.DigestPersister) (*Driver, error) {
	if mode != ModeTriage && mode != ModeDigest {
		return nil, ErrInvalidMode
	}
	if store == nil {
		return nil, ErrReaderRequired
	}
	if pipe == nil {
		return nil, ErrPipelineRequired
	}
	if mode == ModeTriage && triage == nil {
		return nil, ErrPersisterRequired
	}
	if mode == ModeDigest && digests == nil {
		return nil, ErrPersisterRequired
	}

	return &Driver{
		mode:    mode,
		store:   store,
		pipe:    pipe,
		triage:  triage,
		digests: digests,
		logger:  slog.Default().With("component", "driver", "mode", mode.String()),
	}, nil
}

// HandleEvent processes every notification in the event and returns the
// acknowledgement. The ack shape is fixed: ProcessedObjects is the
// notification count regardless of per-object outcomes.
func (d *Driver) HandleEvent(ctx context.Context, event Event) Ack {
	invocation := uuid.NewString()
	logger := d.logger.With("invocation", invocation)

	logger.Info("handling event", "notifications", len(event.Notifications))

	for _, notification := range event.Notifications {
		if err := d.processNotification(ctx, logger, notification); err != nil {
			logger.Error("failed to process object, continuing",
				"bucket", notification.Bucket, "key", notification.Key, "err", err)
		}
	}

	return Ack{
		Message:          "Processing complete.",
		ProcessedObjects: len(event.Notifications),
	}
}

// processNotification runs one uploaded object through the pipeline.
func (d *Driver) processNotification(ctx context.Context, logger *slog.Logger, notification Notification) error {
	batchID := DeriveBatchID(notification.Key)
	if len(batchID) <= shortBatchIDLength {
		logger.Warn("derived batch id is suspiciously short",
			"key", notification.Key, "batchID", batchID)
	}

	content, err := d.store.Get(ctx, notification.Bucket, notification.Key)
	if err != nil {
		return err
	}

	batch, err := ParseBatch(batchID, content)
	if err != nil {
		return err
	}

	logger.Info("parsed batch", "batchID", batchID, "records", len(batch.Records))

	switch d.mode {
	case ModeTriage:
		return d.runTriage(ctx, logger, batch)
	default:
		return d.runDigest(ctx, logger, batch)
	}
}

func (d *Driver) runTriage(ctx context.Context, logger *slog.Logger, batch *core.Batch) error {
	result, err := d.pipe.ClassifyBatch(ctx, batch)
	if err != nil {
		return err
	}

	written := d.triage.Persist(ctx, result.Items)

	logger.Info("triage batch complete",
		"batchID", batch.ID,
		"records", len(batch.Records),
		"classified", len(result.Items),
		"skipped", result.Skipped,
		"red", result.Tally.Red,
		"amber", result.Tally.Amber,
		"green", result.Tally.Green,
		"written", written)

	if written != len(result.Items) {
		logger.Warn("classified items were not all persisted",
			"batchID", batch.ID, "classified", len(result.Items), "written", written)
	}

	return nil
}

func (d *Driver) runDigest(ctx context.Context, logger *slog.Logger, batch *core.Batch) error {
	result, err := d.pipe.DigestBatch(ctx, batch)
	if err != nil {
		return err
	}

	written := d.digests.Persist(ctx, result.Items)

	logger.Info("digest batch complete",
		"batchID", batch.ID,
		"records", len(batch.Records),
		"clients", len(result.Items),
		"skipped", result.Skipped,
		"written", written)

	if written != len(result.Items) {
		logger.Warn("client digests were not all persisted",
			"batchID", batch.ID, "clients", len(result.Items), "written", written)
	}

	return nil
}
