package domain

// CasePolicy selects how the query is compared against each line.
// It is chosen once per invocation and never changes mid-search.
type CasePolicy int

// Available case policies.
const (
	// CaseSensitive compares bytes exactly.
	CaseSensitive CasePolicy = iota

	// CaseInsensitive compares the lowercase forms of query and line.
	CaseInsensitive
)

// PolicyFor returns CaseInsensitive when ignoreCase is set.
func PolicyFor(ignoreCase bool) CasePolicy {
	if ignoreCase {
		return CaseInsensitive
	}
	return CaseSensitive
}

// IsValid returns true if the policy is recognised.
func (p CasePolicy) IsValid() bool {
	return p == CaseSensitive || p == CaseInsensitive
}

// IgnoresCase reports whether comparison folds case.
func (p CasePolicy) IgnoresCase() bool {
	return p == CaseInsensitive
}

// String returns the string representation.
func (p CasePolicy) String() string {
	switch p {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return "unknown"
	}
}

// MarshalText encodes the policy by name so JSON output stays readable.
func (p CasePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Match is a single matched line.
type Match struct {
	// LineNumber is the 1-based position of the line in the text body.
	LineNumber int `json:"line_number"`

	// Line is the verbatim line, without its terminator. It is a view
	// into the searched body, not a copy.
	Line string `json:"line"`
}

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// SearchRequest describes one search over one file.
type SearchRequest struct {
	// Query is the substring to look for.
	Query string

	// Filename is the path of the text source.
	Filename string

	// Policy selects case-sensitive or case-insensitive comparison.
	Policy CasePolicy
}

// SearchReport is the outcome of one search.
type SearchReport struct {
	// ID uniquely identifies this run.
	ID string `json:"id"`

	// Query is the query as supplied, before any folding.
	Query string `json:"query"`

	// Source names where the text body came from.
	// A file path, or empty for in-memory text.
	Source string `json:"source,omitempty"`

	// Policy is the case policy the search ran under.
	Policy CasePolicy `json:"case"`

	// Matches holds the matching lines in body order.
	Matches []Match `json:"matches"`

	// LinesScanned is the number of lines the body was split into.
	LinesScanned int `json:"lines_scanned"`
}

// Lines returns the matched lines without their line numbers.
func (r *SearchReport) Lines() []string {
	lines := make([]string, len(r.Matches))
	for i := range r.Matches {
		lines[i] = r.Matches[i].Line
	}
	return lines
}

// Count returns the number of matched lines.
func (r *SearchReport) Count() int {
	return len(r.Matches)
}
