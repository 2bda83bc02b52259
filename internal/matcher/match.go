package matcher

import "strings"

// Match represents a single line containing at least one occurrence of the pattern.
//
// Segments holds the plain text around the occurrences and Matched holds the
// occurrences themselves, so len(Segments) == len(Matched)+1. Interleaving the
// two reproduces the original line.
type Match struct {
	LineNum  int      // 1-based line number, 0 until attached by FindAll
	Segments []string // plain text before, between and after occurrences
	Matched  []string // text of each occurrence as it appears in the line
}

// Line rejoins segments and occurrences into the original line.
func (m Match) Line() string {
	var b strings.Builder
	n := 0
	for _, s := range m.Segments {
		n += len(s)
	}
	for _, s := range m.Matched {
		n += len(s)
	}
	b.Grow(n)
	for i, seg := range m.Segments {
		b.WriteString(seg)
		if i < len(m.Matched) {
			b.WriteString(m.Matched[i])
		}
	}
	return b.String()
}

// Positions returns the [start, end) byte offsets of each occurrence within the line.
func (m Match) Positions() [][2]int {
	if len(m.Matched) == 0 {
		return nil
	}
	positions := make([][2]int, len(m.Matched))
	off := 0
	for i, text := range m.Matched {
		off += len(m.Segments[i])
		positions[i] = [2]int{off, off + len(text)}
		off += len(text)
	}
	return positions
}

// Options configures how a pattern is matched.
type Options struct {
	IgnoreCase bool
	// SmartCase ignores case unless the pattern contains an uppercase letter.
	SmartCase bool
}

// foldCase reports whether matching should be case-insensitive for pattern.
func (o Options) foldCase(pattern string) bool {
	if o.IgnoreCase {
		return true
	}
	if o.SmartCase {
		return !hasUpper(pattern)
	}
	return false
}
