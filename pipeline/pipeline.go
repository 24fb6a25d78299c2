package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/carelog/ai"
	"github.com/poiesic/carelog/core"
)

// Pipeline fans classification and summarisation work out over a bounded
// worker pool, one fresh pool per batch.
type Pipeline struct {
	classifier *ai.Classifier
	summarizer *ai.Summarizer
	poolSize   int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
	}
}

// NewPipeline creates a new batch pipeline.
func NewPipeline(classifier *ai.Classifier, summarizer *ai.Summarizer, opts ...Option) (*Pipeline, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if summarizer == nil {
		return nil, ErrSummarizerRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	p := &Pipeline{
		classifier: classifier,
		summarizer: summarizer,
		poolSize:   poolSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// TriageResult is the outcome of classifying one batch.
type TriageResult struct {
	// Items holds one triage item per classified record, in input order.
	Items []*core.TriageItem
	// Tally counts classified items per category. Skipped units are not tallied.
	Tally core.Tally
	// Skipped counts records dropped without classification (empty notes or
	// malformed units). Tracked separately from failures.
	Skipped int
}

// ClassifyBatch classifies every record of the batch concurrently.
//
// Each record at its original index is one unit of work. Units with empty or
// whitespace-only notes are skipped. Results are placed by index, so
// completion order never affects the output; the tally is accumulated only
// after all workers have returned.
func (p *Pipeline) ClassifyBatch(ctx context.Context, batch *core.Batch) (*TriageResult, error) {
	if batch == nil {
		return nil, ErrBatchRequired
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	items := make([]*core.TriageItem, len(batch.Records))
	var wg sync.WaitGroup

	for i := range batch.Records {
		record := &batch.Records[i]
		idx := i

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			items[idx] = p.triageRecord(ctx, batch.ID, idx, record)
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("failed to submit record to pool, skipping",
				"batchID", batch.ID, "index", idx, "err", submitErr)
		}
	}

	wg.Wait()

	// Collect in input order; tally only non-skipped units.
	result := &TriageResult{Items: make([]*core.TriageItem, 0, len(items))}
	for _, item := range items {
		if item == nil {
			result.Skipped++
			continue
		}
		result.Items = append(result.Items, item)
		result.Tally.Add(item.Classification)
	}

	return result, nil
}

// triageRecord classifies a single record and builds its output item.
// Returns nil to signal a skip; classification failures never reach here,
// the classifier already absorbed them into a default category.
func (p *Pipeline) triageRecord(ctx context.Context, batchID string, idx int, record *core.VisitRecord) *core.TriageItem {
	if !record.HasNote() {
		p.logger.Warn("record has an empty note, skipping classification",
			"batchID", batchID, "index", idx)
		return nil
	}

	category := p.classifier.ClassifyNote(ctx, record.Note)

	item := &core.TriageItem{
		RecordID:       core.TriageRecordID(batchID, idx),
		Index:          idx,
		BatchID:        batchID,
		Classification: category,
		Client:         record.Client,
		CarePro:        record.CarePro,
		VisitDate:      record.VisitDate,
		Note:           record.Note,
		GeneratedAt:    time.Now().UTC(),
	}

	if err := core.ValidateTriageItem(item); err != nil {
		p.logger.Error("failed to build triage item, skipping",
			"batchID", batchID, "index", idx, "err", err)
		return nil
	}

	return item
}

// DigestResult is the outcome of summarising one batch.
type DigestResult struct {
	// Items holds one digest per summarised client, in first-seen client order.
	Items []*core.ClientDigest
	// Skipped counts clients dropped because none of their records carried a
	// usable note.
	Skipped int
}

// DigestBatch groups the batch's records by client and summarises each
// client's notes concurrently. Each client group is one unit of work,
// dispatched to the pool exactly as individual records are in ClassifyBatch.
//
// Records with no client identifier group under the ClientUnknown sentinel.
// Iteration preserves first-seen group ordering.
func (p *Pipeline) DigestBatch(ctx context.Context, batch *core.Batch) (*DigestResult, error) {
	if batch == nil {
		return nil, ErrBatchRequired
	}

	groups, order := groupByClient(batch.Records)

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	digests := make([]*core.ClientDigest, len(order))
	var wg sync.WaitGroup

	for i, client := range order {
		idx := i
		name := client
		records := groups[client]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			digests[idx] = p.digestClient(ctx, batch.ID, name, records)
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("failed to submit client group to pool, skipping",
				"batchID", batch.ID, "client", name, "err", submitErr)
		}
	}

	wg.Wait()

	result := &DigestResult{Items: make([]*core.ClientDigest, 0, len(digests))}
	for _, digest := range digests {
		if digest == nil {
			result.Skipped++
			continue
		}
		result.Items = append(result.Items, digest)
	}

	return result, nil
}

// digestClient summarises one client's records. Returns nil to signal a skip.
func (p *Pipeline) digestClient(ctx context.Context, batchID, client string, records []core.VisitRecord) *core.ClientDigest {
	// Chronological sort on a copy; VisitDate strings are expected to be
	// ISO-like so lexical order is date order.
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b core.VisitRecord) int {
		return strings.Compare(a.VisitDate, b.VisitDate)
	})

	notes := make([]string, 0, len(sorted))
	for _, record := range sorted {
		if note := strings.TrimSpace(record.Note); note != "" {
			notes = append(notes, note)
		}
	}

	if len(notes) == 0 {
		p.logger.Warn("client has no non-empty notes, skipping",
			"batchID", batchID, "client", client)
		return nil
	}

	summary := p.summarizer.SummarizeNotes(ctx, notes)

	// Latest visit date is the max over the client's original record set,
	// taken independently of the sorted-and-filtered list used for the prompt.
	var latest string
	for _, record := range records {
		if record.VisitDate > latest {
			latest = record.VisitDate
		}
	}

	digest := &core.ClientDigest{
		ClientID:        core.DigestClientID(client),
		Client:          client,
		BatchID:         batchID,
		LatestVisitDate: latest,
		VisitCount:      len(records),
		Summary:         summary,
		GeneratedAt:     time.Now().UTC(),
	}

	if err := core.ValidateClientDigest(digest); err != nil {
		p.logger.Error("failed to build client digest, skipping",
			"batchID", batchID, "client", client, "err", err)
		return nil
	}

	return digest
}

// groupByClient buckets records by client name, preserving first-seen order.
func groupByClient(records []core.VisitRecord) (map[string][]core.VisitRecord, []string) {
	groups := make(map[string][]core.VisitRecord)
	var order []string
	for _, record := range records {
		name := record.ClientName()
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], record)
	}
	return groups, order
}
