package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/carelog/ai"
	"github.com/poiesic/carelog/ai/mock"
	"github.com/poiesic/carelog/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordGenerator replies RED/GREEN based on keywords in the embedded note.
func keywordGenerator() *mock.MockTextGenerator {
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		if strings.Contains(prompt, "fell") || strings.Contains(prompt, "injured") {
			return "RED", nil
		}
		if strings.Contains(prompt, "routine") {
			return "GREEN", nil
		}
		return "AMBER", nil
	}
	return gen
}

func newTestPipeline(t *testing.T, gen ai.TextGenerator, opts ...Option) *Pipeline {
	t.Helper()

	classifier, err := ai.NewClassifier(gen)
	require.NoError(t, err)
	summarizer, err := ai.NewSummarizer(gen)
	require.NoError(t, err)

	p, err := NewPipeline(classifier, summarizer, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPipeline_Validation(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	classifier, err := ai.NewClassifier(gen)
	require.NoError(t, err)
	summarizer, err := ai.NewSummarizer(gen)
	require.NoError(t, err)

	_, err = NewPipeline(nil, summarizer)
	assert.ErrorIs(t, err, ErrClassifierRequired)

	_, err = NewPipeline(classifier, nil)
	assert.ErrorIs(t, err, ErrSummarizerRequired)
}

func TestClassifyBatch(t *testing.T) {
	p := newTestPipeline(t, keywordGenerator())

	batch := &core.Batch{
		ID: "batch-2024-06-01",
		Records: []core.VisitRecord{
			{Note: "patient fell and was injured", Client: "A", CarePro: "cp1", VisitDate: "2024-06-01"},
			{Note: "routine check, all well", Client: "B", CarePro: "cp2", VisitDate: "2024-06-01"},
			{Note: "", Client: "C", CarePro: "cp3", VisitDate: "2024-06-01"},
		},
	}

	result, err := p.ClassifyBatch(context.Background(), batch)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Skipped)

	assert.Equal(t, core.Tally{Red: 1, Amber: 0, Green: 1}, result.Tally)

	// Items come back in input order with index-derived keys
	assert.Equal(t, 0, result.Items[0].Index)
	assert.Equal(t, core.CategoryRed, result.Items[0].Classification)
	assert.Equal(t, core.TriageRecordID("batch-2024-06-01", 0), result.Items[0].RecordID)
	assert.Equal(t, 1, result.Items[1].Index)
	assert.Equal(t, core.CategoryGreen, result.Items[1].Classification)

	// Output fields carry the record verbatim plus the batch id
	assert.Equal(t, "batch-2024-06-01", result.Items[0].BatchID)
	assert.Equal(t, "A", result.Items[0].Client)
	assert.Equal(t, "cp1", result.Items[0].CarePro)
	assert.Equal(t, "patient fell and was injured", result.Items[0].Note)
	assert.False(t, result.Items[0].GeneratedAt.IsZero())
}

func TestClassifyBatch_OutputNeverExceedsInput(t *testing.T) {
	p := newTestPipeline(t, keywordGenerator())

	tests := []struct {
		name      string
		records   []core.VisitRecord
		wantItems int
	}{
		{name: "empty batch", records: nil, wantItems: 0},
		{name: "all empty notes", records: []core.VisitRecord{{Note: ""}, {Note: "  "}}, wantItems: 0},
		{
			name:      "all usable notes",
			records:   []core.VisitRecord{{Note: "routine"}, {Note: "routine"}},
			wantItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.ClassifyBatch(context.Background(), &core.Batch{ID: "b", Records: tt.records})
			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
			assert.LessOrEqual(t, len(result.Items), len(tt.records))
			assert.Equal(t, len(tt.records)-tt.wantItems, result.Skipped)
		})
	}
}

func TestClassifyBatch_CompletionOrderIndependent(t *testing.T) {
	// Unit 0 is artificially slow, the last unit fast; results must still
	// correlate to their originating records by index.
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		if strings.Contains(prompt, "slow first note") {
			time.Sleep(50 * time.Millisecond)
			return "RED", nil
		}
		return "GREEN", nil
	}

	p := newTestPipeline(t, gen, WithPoolSize(8))

	const n = 8
	records := make([]core.VisitRecord, n)
	records[0] = core.VisitRecord{Note: "slow first note", VisitDate: "2024-01-01"}
	for i := 1; i < n; i++ {
		records[i] = core.VisitRecord{Note: fmt.Sprintf("fast note %d", i), VisitDate: "2024-01-01"}
	}

	result, err := p.ClassifyBatch(context.Background(), &core.Batch{ID: "order", Records: records})
	require.NoError(t, err)
	require.Len(t, result.Items, n)

	assert.Equal(t, 0, result.Items[0].Index)
	assert.Equal(t, core.CategoryRed, result.Items[0].Classification)
	assert.Equal(t, "slow first note", result.Items[0].Note)
	for i := 1; i < n; i++ {
		assert.Equal(t, i, result.Items[i].Index)
		assert.Equal(t, core.CategoryGreen, result.Items[i].Classification)
	}
}

func TestClassifyBatch_ClassifierErrorsTally(t *testing.T) {
	// Generator failures are absorbed into amber by the classifier, so they
	// count as classified units, never as skips.
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "", errors.New("model unavailable")
	}
	p := newTestPipeline(t, gen)

	result, err := p.ClassifyBatch(context.Background(), &core.Batch{
		ID:      "b",
		Records: []core.VisitRecord{{Note: "a note"}, {Note: "another note"}},
	})
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, core.Tally{Amber: 2}, result.Tally)
}

func TestClassifyBatch_NilBatch(t *testing.T) {
	p := newTestPipeline(t, keywordGenerator())
	_, err := p.ClassifyBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBatchRequired)
}

func TestDigestBatch(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "A stable period overall.", nil
	}
	p := newTestPipeline(t, gen)

	batch := &core.Batch{
		ID: "batch-clients",
		Records: []core.VisitRecord{
			{Client: "A", Note: "first visit", VisitDate: "2024-01-01"},
			{Client: "A", Note: "second visit", VisitDate: "2024-01-02"},
			{Client: "A", Note: "third visit", VisitDate: "2024-01-03"},
			{Client: "B", Note: "", VisitDate: "2024-01-05"},
		},
	}

	result, err := p.DigestBatch(context.Background(), batch)
	require.NoError(t, err)

	// Client B has no usable notes and is skipped entirely
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Skipped)

	digest := result.Items[0]
	assert.Equal(t, "A", digest.Client)
	assert.Equal(t, core.DigestClientID("A"), digest.ClientID)
	assert.Equal(t, "batch-clients", digest.BatchID)
	assert.Equal(t, 3, digest.VisitCount)
	assert.Equal(t, "2024-01-03", digest.LatestVisitDate)
	assert.Equal(t, "A stable period overall.", digest.Summary)
}

func TestDigestBatch_NotesOrderedChronologically(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "summary", nil
	}
	p := newTestPipeline(t, gen)

	batch := &core.Batch{
		ID: "b",
		Records: []core.VisitRecord{
			{Client: "A", Note: "newest", VisitDate: "2024-03-01"},
			{Client: "A", Note: "oldest", VisitDate: "2024-01-01"},
			{Client: "A", Note: "middle", VisitDate: "2024-02-01"},
		},
	}

	_, err := p.DigestBatch(context.Background(), batch)
	require.NoError(t, err)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "1. oldest")
	assert.Contains(t, prompts[0], "2. middle")
	assert.Contains(t, prompts[0], "3. newest")
}

func TestDigestBatch_LatestDateFromOriginalSet(t *testing.T) {
	// The record with the maximal date has an empty note. It contributes
	// nothing to the prompt but still determines LatestVisitDate and counts
	// toward VisitCount.
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "summary", nil
	}
	p := newTestPipeline(t, gen)

	batch := &core.Batch{
		ID: "b",
		Records: []core.VisitRecord{
			{Client: "A", Note: "a real note", VisitDate: "2024-01-01"},
			{Client: "A", Note: "   ", VisitDate: "2024-09-30"},
		},
	}

	result, err := p.DigestBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, "2024-09-30", result.Items[0].LatestVisitDate)
	assert.Equal(t, 2, result.Items[0].VisitCount)
}

func TestDigestBatch_UnknownClientSentinel(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "summary", nil
	}
	p := newTestPipeline(t, gen)

	batch := &core.Batch{
		ID: "b",
		Records: []core.VisitRecord{
			{Note: "no client on this record", VisitDate: "2024-01-01"},
			{Note: "nor on this one", VisitDate: "2024-01-02"},
		},
	}

	result, err := p.DigestBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, core.ClientUnknown, result.Items[0].Client)
	assert.Equal(t, 2, result.Items[0].VisitCount)
}

func TestDigestBatch_FirstSeenClientOrder(t *testing.T) {
	gen := mock.NewMockTextGenerator()
	gen.GenerateTextFunc = func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
		return "summary", nil
	}
	p := newTestPipeline(t, gen, WithPoolSize(4))

	batch := &core.Batch{
		ID: "b",
		Records: []core.VisitRecord{
			{Client: "C", Note: "n", VisitDate: "2024-01-01"},
			{Client: "A", Note: "n", VisitDate: "2024-01-01"},
			{Client: "B", Note: "n", VisitDate: "2024-01-01"},
			{Client: "A", Note: "n", VisitDate: "2024-01-02"},
		},
	}

	result, err := p.DigestBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	assert.Equal(t, "C", result.Items[0].Client)
	assert.Equal(t, "A", result.Items[1].Client)
	assert.Equal(t, "B", result.Items[2].Client)
	assert.Equal(t, 2, result.Items[1].VisitCount)
}

func TestGroupByClient(t *testing.T) {
	records := []core.VisitRecord{
		{Client: "B", Note: "1"},
		{Client: "", Note: "2"},
		{Client: "B", Note: "3"},
	}

	groups, order := groupByClient(records)

	assert.Equal(t, []string{"B", core.ClientUnknown}, order)
	assert.Len(t, groups["B"], 2)
	assert.Len(t, groups[core.ClientUnknown], 1)
}
