package matcher

import (
	"iter"
	"strings"
)

// Search returns every line of contents containing pattern, in line order.
func Search(pattern, contents string, opts Options) []Match {
	return NewMatcher(pattern, opts).FindAll(contents)
}

// FindAll scans contents (full file text) and returns all matching lines.
func (m *Matcher) FindAll(contents string) []Match {
	return m.FindAllAt(contents, 1)
}

// FindAllAt is FindAll for a slice of a larger text whose first line has
// number firstLine.
func (m *Matcher) FindAllAt(contents string, firstLine int) []Match {
	var matches []Match
	for n, line := range Lines(contents) {
		if match, ok := m.FindLine(line, firstLine+n-1); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// All is the lazy form of FindAll.
func (m *Matcher) All(contents string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for n, line := range Lines(contents) {
			match, ok := m.FindLine(line, n)
			if ok && !yield(match) {
				return
			}
		}
	}
}

// Count returns the number of lines in contents that contain the pattern.
func (m *Matcher) Count(contents string) int {
	count := 0
	for _, line := range Lines(contents) {
		if _, ok := m.FindLine(line, 0); ok {
			count++
		}
	}
	return count
}

// Lines yields each line of contents with its 1-based number.
//
// Lines end at "\n" or "\r\n"; the terminator is not part of the line.
// A final terminator does not start another line, so "a\nb\n" has two lines,
// "\n" has one empty line and "" has none. A lone "\r" is kept.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineNum := 0
		remaining := contents
		for len(remaining) > 0 {
			lineNum++
			line := remaining
			if idx := strings.IndexByte(remaining, '\n'); idx >= 0 {
				line = strings.TrimSuffix(remaining[:idx], "\r")
				remaining = remaining[idx+1:]
			} else {
				remaining = ""
			}
			if !yield(lineNum, line) {
				return
			}
		}
	}
}
