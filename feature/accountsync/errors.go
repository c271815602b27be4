package accountsync

import "errors"

var (
	// ErrSourceNotFound means the source-of-truth document does not exist.
	ErrSourceNotFound = errors.New("source document not found")
	// ErrNoAccounts means the source document exists but has no accounts section or no usable accounts.
	ErrNoAccounts = errors.New("no accounts found in source document (accounts section not detected)")
	// ErrPruneFailed means a snapshot was stored but older snapshots could not be removed.
	ErrPruneFailed = errors.New("failed to prune snapshots")
)
