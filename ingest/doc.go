// Package ingest orchestrates one triggering event end to end.
//
// A Driver receives an Event carrying one or more upload notifications.
// For each notification independently it derives the batch identifier,
// fetches and parses the batch object, runs the pipeline, and bulk-persists
// the results. A failure in any step skips that notification and moves on;
// one bad object never blocks its siblings, and the acknowledgment returned
// to the trigger has a fixed shape regardless of per-item outcomes.
package ingest
