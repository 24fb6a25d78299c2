package storage

import (
	"context"
	"log/slog"

	"github.com/poiesic/carelog/core"
)

// TriagePersister applies the bulk-write policy for triage items: nothing to
// write is a no-op, and a rejected batch write counts as zero successes
// rather than a partial count. Callers must not assume partial durability on
// error; the processed-vs-written discrepancy is logged, never retried.
type TriagePersister struct {
	repo   TriageRepository
	logger *slog.Logger
}

// NewTriagePersister creates a persister over the given repository.
func NewTriagePersister(repo TriageRepository) (*TriagePersister, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	return &TriagePersister{
		repo:   repo,
		logger: slog.Default().With("component", "triage-persister"),
	}, nil
}

// Persist writes the items and returns how many were persisted.
func (p *TriagePersister) Persist(ctx context.Context, items []*core.TriageItem) int {
	if len(items) == 0 {
		p.logger.Info("no triage items to write")
		return 0
	}

	if err := p.repo.PutTriageItems(ctx, items...); err != nil {
		p.logger.Error("batch write of triage items failed", "items", len(items), "err", err)
		return 0
	}

	p.logger.Info("wrote triage items", "items", len(items))
	return len(items)
}

// DigestPersister applies the same bulk-write policy for client digests.
type DigestPersister struct {
	repo   DigestRepository
	logger *slog.Logger
}

// NewDigestPersister creates a persister over the given repository.
func NewDigestPersister(repo DigestRepository) (*DigestPersister, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	return &DigestPersister{
		repo:   repo,
		logger: slog.Default().With("component", "digest-persister"),
	}, nil
}

// Persist writes the digests and returns how many were persisted.
func (p *DigestPersister) Persist(ctx context.Context, digests []*core.ClientDigest) int {
	if len(digests) == 0 {
		p.logger.Info("no client digests to write")
		return 0
	}

	if err := p.repo.PutClientDigests(ctx, digests...); err != nil {
		p.logger.Error("batch write of client digests failed", "digests", len(digests), "err", err)
		return 0
	}

	p.logger.Info("wrote client digests", "digests", len(digests))
	return len(digests)
}
