// Package pipeline provides concurrent batch processing of visit records.
//
// The Pipeline type fans independent units of work out over a bounded worker
// pool: one unit per record in triage mode, one unit per client group in
// digest mode. Each unit carries its own identity (record index or client
// position), so correctness never depends on completion order. Results are
// collected in submission order once the pool has fully drained, and the
// category tally is accumulated afterwards in the calling goroutine.
//
// A fresh pool is created for each batch and torn down before returning;
// nothing persists across invocations.
package pipeline
