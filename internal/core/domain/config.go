package domain

// EnvCaseInsensitive is the environment variable that switches the
// search to case-insensitive comparison. Its presence is what counts;
// the value is ignored, so an empty value still enables it.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// Config holds everything one invocation needs.
type Config struct {
	// Query is the substring to search for. It may be empty.
	Query string

	// Filename is the path of the file to search.
	Filename string

	// CaseSensitive is false when the search should ignore case.
	CaseSensitive bool
}

// NewConfig builds a Config from positional arguments, excluding the
// program name. The first argument is the query and the second the
// filename; any further arguments are ignored.
func NewConfig(args []string, caseInsensitive bool) (Config, error) {
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilename
	}

	return Config{
		Query:         args[0],
		Filename:      args[1],
		CaseSensitive: !caseInsensitive,
	}, nil
}

// Policy returns the case policy selected by the config.
func (c Config) Policy() CasePolicy {
	return PolicyFor(!c.CaseSensitive)
}

// Request converts the config into a search request.
func (c Config) Request() SearchRequest {
	return SearchRequest{
		Query:    c.Query,
		Filename: c.Filename,
		Policy:   c.Policy(),
	}
}
