// Package history records sync runs in the database.
//
// Each run stores the reconciliation counts, the document locations and
// whether the local document was written. Account data (aliases, addresses,
// keys) is never persisted here.
//
// # Components
//
//   - Repository: GORM-backed storage for SyncRun rows (table sync_runs).
//   - Handler: exposes the history over HTTP.
//   - Feature: registers the handler with the loader when a database is configured.
//
// # HTTP Endpoints
//
//   - GET /history?limit=N : recent runs, newest first.
package history
