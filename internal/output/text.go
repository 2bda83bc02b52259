package output

import (
	"strconv"

	"github.com/dl/minigrep/internal/matcher"
)

// TextFormatter prints each matching line with its occurrences highlighted.
type TextFormatter struct {
	styles      Styles
	lineNumbers bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, lineNumbers bool) *TextFormatter {
	return &TextFormatter{
		styles:      styles,
		lineNumbers: lineNumbers,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result) []byte {
	for _, m := range result.Matches {
		buf = f.formatLine(buf, m)
	}
	return buf
}

func (f *TextFormatter) formatLine(buf []byte, m matcher.Match) []byte {
	if f.lineNumbers {
		buf = f.styles.render(buf, f.styles.LineNum, strconv.Itoa(m.LineNum))
		buf = f.styles.render(buf, f.styles.Separator, ":")
	}

	for i, seg := range m.Segments {
		buf = append(buf, seg...)
		if i < len(m.Matched) {
			buf = f.styles.render(buf, f.styles.Match, m.Matched[i])
		}
	}

	return append(buf, '\n')
}

// CountFormatter prints only the number of matching lines.
type CountFormatter struct{}

// NewCountFormatter creates a CountFormatter.
func NewCountFormatter() *CountFormatter {
	return &CountFormatter{}
}

func (f *CountFormatter) Format(buf []byte, result Result) []byte {
	buf = strconv.AppendInt(buf, int64(result.Count()), 10)
	return append(buf, '\n')
}

var (
	_ Formatter = (*TextFormatter)(nil)
	_ Formatter = (*CountFormatter)(nil)
)
