package matcher

import "strings"

// Matcher finds literal occurrences of a single pattern, line by line.
// A Matcher holds no mutable state and is safe for concurrent use.
type Matcher struct {
	pattern    string
	needle     string // pattern as searched: folded when ignoreCase
	ignoreCase bool
}

// NewMatcher creates a Matcher for pattern.
// An empty pattern never matches.
func NewMatcher(pattern string, opts Options) *Matcher {
	m := &Matcher{
		pattern:    pattern,
		needle:     pattern,
		ignoreCase: opts.foldCase(pattern),
	}
	if m.ignoreCase {
		m.needle = fold(pattern).text
	}
	return m
}

// Pattern returns the pattern as given to NewMatcher.
func (m *Matcher) Pattern() string { return m.pattern }

// IgnoreCase reports whether the matcher folds case.
func (m *Matcher) IgnoreCase() bool { return m.ignoreCase }

// Scan checks a single line for occurrences of pattern.
// The returned Match has no line number.
func Scan(line, pattern string, ignoreCase bool) (Match, bool) {
	return NewMatcher(pattern, Options{IgnoreCase: ignoreCase}).FindLine(line, 0)
}

// FindLine splits line around every non-overlapping occurrence of the pattern.
// Occurrences are found greedily left to right: after a hit the search resumes
// at its end, so "aaa" holds one occurrence of "aa".
// Returns false if the pattern does not occur in line.
func (m *Matcher) FindLine(line string, lineNum int) (Match, bool) {
	if len(m.needle) == 0 {
		return Match{}, false
	}

	var (
		match Match
		ok    bool
	)
	if m.ignoreCase {
		match, ok = scanFolded(line, m.needle)
	} else {
		match, ok = scanExact(line, m.needle)
	}
	if !ok {
		return Match{}, false
	}
	match.LineNum = lineNum
	return match, true
}

func scanExact(line, pattern string) (Match, bool) {
	idx := strings.Index(line, pattern)
	if idx < 0 {
		return Match{}, false
	}

	var match Match
	start := 0
	for idx >= 0 {
		pos := start + idx
		match.Segments = append(match.Segments, line[start:pos])
		match.Matched = append(match.Matched, line[pos:pos+len(pattern)])
		start = pos + len(pattern)
		idx = strings.Index(line[start:], pattern)
	}
	match.Segments = append(match.Segments, line[start:])
	return match, true
}

// scanFolded locates needle (already folded) in the folded line and slices
// each occurrence out of the original line, keeping its casing.
func scanFolded(line, needle string) (Match, bool) {
	f := fold(line)
	if !strings.Contains(f.text, needle) {
		return Match{}, false
	}

	var match Match
	prev := 0 // original offset where the next segment begins
	for from := 0; from <= len(f.text)-len(needle); {
		idx := strings.Index(f.text[from:], needle)
		if idx < 0 {
			break
		}
		lo := from + idx
		hi := lo + len(needle)
		start, end := f.offset(lo), f.offset(hi)
		if start < 0 || end < 0 {
			// Hit straddles a rune boundary of the folded text.
			from = lo + 1
			continue
		}
		match.Segments = append(match.Segments, line[prev:start])
		match.Matched = append(match.Matched, line[start:end])
		prev = end
		from = hi
	}

	if len(match.Matched) == 0 {
		return Match{}, false
	}
	match.Segments = append(match.Segments, line[prev:])
	return match, true
}
