// Package accountsync keeps a local key document in sync with the wallet CLI configuration.
//
// The source of truth (by default ~/.shelby/config.yaml) is parsed with
// core/document, merged into the local document (pk.txt) with core/reconcile,
// and the canonical result replaces the local file.
//
// # Rules
//
//   - A missing source document is fatal (ErrSourceNotFound).
//   - A source document without accounts is fatal (ErrNoAccounts), so callers can
//     tell "file absent" from "file present but empty or malformed".
//   - A missing local document is treated as empty and created.
//   - Nothing is written until the merge has fully succeeded, and the write itself
//     goes through a temporary file and a rename.
//   - Mismatches are logged as warnings and never overwritten.
//
// # Components
//
//   - Service: the orchestrator (Sync, Accounts).
//   - Source: FileSource or ObjectSource (S3/MinIO object).
//   - Archiver: optional snapshots of the previous local document in a bucket.
//   - Watcher: re-runs Sync when the source file changes (fsnotify).
//   - Handler/Feature: HTTP endpoints registered through core/loader.
//
// # HTTP Endpoints
//
//   - POST /sync?dry_run=true : run a sync (or only compute the report).
//   - GET /sync/accounts : list local accounts with masked private keys.
package accountsync
