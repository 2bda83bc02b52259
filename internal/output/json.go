package output

import (
	"encoding/json"
)

// JSONFormatter formats results as JSON Lines (one JSON object per matching line).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonMatch is the JSON serialization format for a matching line.
type jsonMatch struct {
	Type    string    `json:"type"`
	File    string    `json:"file,omitempty"`
	LineNum int       `json:"line_number"`
	Text    string    `json:"text"`
	Matches []jsonPos `json:"matches"`
}

type jsonPos struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func (f *JSONFormatter) Format(buf []byte, result Result) []byte {
	for _, m := range result.Matches {
		jm := jsonMatch{
			Type:    "match",
			File:    result.FilePath,
			LineNum: m.LineNum,
			Text:    m.Line(),
			Matches: make([]jsonPos, len(m.Matched)),
		}
		for i, pos := range m.Positions() {
			jm.Matches[i] = jsonPos{Start: pos[0], End: pos[1], Text: m.Matched[i]}
		}
		data, err := json.Marshal(jm)
		if err != nil {
			continue // unreachable: jsonMatch holds only strings and ints
		}
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}
	return buf
}

var _ Formatter = (*JSONFormatter)(nil)
