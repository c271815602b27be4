// Package reconcile merges a source-of-truth account set into a destination set.
//
// The merge is additive and never destructive:
//   - aliases missing from the destination are added with the source fields,
//   - empty destination fields are filled from the source,
//   - differing non-empty values are reported as mismatches and left alone,
//   - aliases only present in the destination are kept as they are.
//
// Reconcile is a pure function. It clones the destination instead of mutating
// it and performs no I/O, so callers decide when (and whether) the result is
// persisted.
//
// # Report
//
// Every run yields a Report with aggregate counts and an ordered list of
// changes. Running Reconcile again with the same source over its own output
// reports no additions or fills; mismatches are detection only and are
// reported on every run until resolved by hand.
//
// # Usage Example
//
//	merged, report := reconcile.Reconcile(source, local)
//	if report.Mismatches > 0 {
//	    log.Warn("mismatches detected", zap.Int("count", report.Mismatches))
//	}
//	os.WriteFile(path, []byte(document.Serialize(merged)), 0o600)
package reconcile
