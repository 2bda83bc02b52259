package output

import "github.com/dl/minigrep/internal/matcher"

// Result aggregates the matches found in a single file.
type Result struct {
	FilePath string
	Matches  []matcher.Match
	// MatchCount holds the count for count-only mode, where no Match
	// records are built. When 0, len(Matches) is used instead.
	MatchCount int
}

// Count returns the number of matching lines in this result.
func (r *Result) Count() int {
	if r.MatchCount > 0 {
		return r.MatchCount
	}
	return len(r.Matches)
}

// HasMatch returns true if this result has at least one matching line.
func (r *Result) HasMatch() bool {
	return r.Count() > 0
}
