package reconcile

import (
	"fmt"
	"strings"

	"account-sync/core/document"
)

// fields are compared in this order for every alias.
var fields = []string{document.FieldAddress, document.FieldPrivateKey}

// Reconcile merges source into a copy of destination and returns the merged
// set with a report. Neither input is modified.
func Reconcile(source, destination document.AccountSet) (document.AccountSet, Report) {
	result := destination.Clone()
	report := Report{Changes: []Change{}}

	// Sorted iteration keeps the change list deterministic.
	for _, alias := range source.Aliases() {
		src := source[alias]

		dst, exists := result[alias]
		if !exists {
			result[alias] = document.Account{
				Address:    strings.TrimSpace(src.Address),
				PrivateKey: strings.TrimSpace(src.PrivateKey),
			}
			report.Added++
			report.Changes = append(report.Changes, Change{
				Type:   ChangeAdd,
				Alias:  alias,
				Reason: "missing in destination",
			})
			continue
		}

		for _, field := range fields {
			srcVal := strings.TrimSpace(src.Field(field))
			dstVal := strings.TrimSpace(dst.Field(field))

			// Fill missing fields only
			if dstVal == "" && srcVal != "" {
				dst = dst.WithField(field, srcVal)
				dstVal = srcVal
				report.Filled++
				report.Changes = append(report.Changes, Change{
					Type:   ChangeFill,
					Alias:  alias,
					Field:  field,
					Reason: "empty in destination",
				})
			}

			// Detect conflicts without overwriting
			if srcVal != "" && dstVal != "" && srcVal != dstVal {
				report.Mismatches++
				report.Changes = append(report.Changes, Change{
					Type:   ChangeMismatch,
					Alias:  alias,
					Field:  field,
					Reason: mismatchReason(field, srcVal, dstVal),
				})
			}
		}
		result[alias] = dst
	}

	return result, report
}

// mismatchReason describes a conflict. Addresses are public and shown in
// full; private keys are never echoed.
func mismatchReason(field, srcVal, dstVal string) string {
	if field == document.FieldAddress {
		return fmt.Sprintf("address: source=%s destination=%s", srcVal, dstVal)
	}
	return fmt.Sprintf("%s: source and destination values differ", field)
}
