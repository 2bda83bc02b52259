package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldedLine is a lowercased copy of a line used to locate case-insensitive
// occurrences, plus the mapping needed to translate its offsets back.
type foldedLine struct {
	text string
	// origin maps a byte offset in text to the byte offset in the original
	// line. Offsets that fall inside a multi-byte rune map to -1.
	// origin has len(text)+1 entries, or is nil when every offset is preserved.
	origin []int
}

// offset translates a byte offset in the folded text to the original line.
// Returns -1 if i does not fall on a rune boundary.
func (f foldedLine) offset(i int) int {
	if f.origin == nil {
		return i
	}
	return f.origin[i]
}

// fold lowercases s rune by rune. Lowercasing can change the encoded length
// of a rune (U+0130 is two bytes, its lowercase 'i' is one), so offsets are
// tracked whenever that happens. Invalid UTF-8 bytes are copied through.
func fold(s string) foldedLine {
	if isASCII(s) {
		return foldedLine{text: strings.ToLower(s)}
	}

	var b strings.Builder
	b.Grow(len(s))
	origin := make([]int, 0, len(s)+1)
	shifted := false

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			origin = append(origin, i)
			i++
			continue
		}
		n, _ := b.WriteRune(unicode.ToLower(r))
		if n != size {
			shifted = true
		}
		origin = append(origin, i)
		for k := 1; k < n; k++ {
			origin = append(origin, -1)
		}
		i += size
	}

	if !shifted {
		return foldedLine{text: b.String()}
	}
	origin = append(origin, len(s))
	return foldedLine{text: b.String(), origin: origin}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
