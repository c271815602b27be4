package reconcile

// ChangeType classifies a single reconciliation outcome.
type ChangeType string

const (
	// ChangeAdd records an alias copied from the source because the destination lacked it.
	ChangeAdd ChangeType = "add"
	// ChangeFill records an empty destination field filled from the source.
	ChangeFill ChangeType = "fill"
	// ChangeMismatch records differing non-empty values. Nothing is written.
	ChangeMismatch ChangeType = "mismatch"
)

// Change describes one addition, fill or mismatch.
type Change struct {
	// Type specifies what happened.
	Type ChangeType `json:"type"`

	// Alias is the account the change applies to.
	Alias string `json:"alias"`

	// Field is the affected field. Empty for ChangeAdd.
	Field string `json:"field,omitempty"`

	// Reason is a human-readable explanation. It never contains private key material.
	Reason string `json:"reason"`
}

// Report summarises a reconciliation run.
type Report struct {
	// Added counts aliases inserted into the destination.
	Added int `json:"added"`

	// Filled counts empty destination fields populated from the source.
	Filled int `json:"filled"`

	// Mismatches counts fields whose source and destination values differ.
	Mismatches int `json:"mismatches"`

	// Changes lists each outcome, ordered by alias.
	Changes []Change `json:"changes"`
}

// HasChanges reports whether the run added or filled anything.
func (r Report) HasChanges() bool {
	return r.Added > 0 || r.Filled > 0
}

// Filter returns the changes of the given type.
func (r Report) Filter(t ChangeType) []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
