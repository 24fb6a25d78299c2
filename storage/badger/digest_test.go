package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/carelog/core"
	"github.com/poiesic/carelog/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDigestRepo(t *testing.T) storage.DigestRepository {
	t.Helper()

	triageRepo, digestRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		digestRepo.Close()
		triageRepo.Close()
		backend.Close()
	})

	return digestRepo
}

func makeDigest(batchID, client string) *core.ClientDigest {
	return &core.ClientDigest{
		ClientID:        core.DigestClientID(client),
		Client:          client,
		BatchID:         batchID,
		LatestVisitDate: "2024-05-03",
		VisitCount:      3,
		Summary:         "Condition stable across the period.",
		GeneratedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestDigestRepository_PutAndGet(t *testing.T) {
	repo := setupDigestRepo(t)
	ctx := context.Background()

	digest := makeDigest("batch-1", "Mrs. Patel")
	require.NoError(t, repo.PutClientDigests(ctx, digest))

	got, err := repo.GetClientDigest(ctx, "batch-1", digest.ClientID)
	require.NoError(t, err)

	assert.Equal(t, "Mrs. Patel", got.Client)
	assert.Equal(t, "2024-05-03", got.LatestVisitDate)
	assert.Equal(t, 3, got.VisitCount)
	assert.Equal(t, digest.Summary, got.Summary)
	assert.True(t, digest.GeneratedAt.Equal(got.GeneratedAt))
}

func TestDigestRepository_GetNotFound(t *testing.T) {
	repo := setupDigestRepo(t)

	_, err := repo.GetClientDigest(context.Background(), "missing", core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDigestRepository_GetByBatch(t *testing.T) {
	repo := setupDigestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutClientDigests(ctx,
		makeDigest("batch-a", "A"),
		makeDigest("batch-a", "B"),
	))
	require.NoError(t, repo.PutClientDigests(ctx, makeDigest("batch-b", "A")))

	got, err := repo.GetClientDigestsByBatch(ctx, "batch-a")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Same client under a different batch id is a distinct item
	got, err = repo.GetClientDigestsByBatch(ctx, "batch-b")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
