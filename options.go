package persondir

// Relation names accepted by Include. The set is open: backends ignore names
// they do not recognize, so new relations can be toggled without breaking
// existing callers.
const (
	IncludeEmployee        = "employee"
	IncludeStudent         = "student"
	IncludeTranscripts     = "transcripts"
	IncludeTransfers       = "transfers"
	IncludeSports          = "sports"
	IncludeAdvisers        = "advisers"
	IncludeMajors          = "majors"
	IncludeIntendedMajors  = "intended_majors"
	IncludePendingMajors   = "pending_majors"
	IncludeRequestedMajors = "requested_majors"
	IncludeEthnicities     = "ethnicities"
	IncludeHolds           = "holds"
	IncludeDegrees         = "degrees"
)

// Include is the per-relation inclusion toggle set. A nil map and any missing
// key both mean "include": only explicitly disabled relations are skipped.
type Include map[string]bool

// Enabled reports whether the named relation should be materialized.
func (in Include) Enabled(name string) bool {
	if in == nil {
		return true
	}
	v, ok := in[name]
	if !ok {
		return true
	}
	return v
}

// With returns a copy of the toggle set with one name overridden. The
// receiver is never mutated, so a caller-supplied set can be narrowed for a
// nested projection without side effects.
func (in Include) With(name string, on bool) Include {
	out := make(Include, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	out[name] = on
	return out
}

// Query carries the common listing parameters. Page is 1-indexed; pagination
// applies only when both Page and PageSize are positive, otherwise the full
// result set is returned.
type Query struct {
	Include  Include
	Page     int
	PageSize int
}

// Paginated reports whether the query requests an offset/limit slice.
func (q Query) Paginated() bool {
	return q.Page > 0 && q.PageSize > 0
}
