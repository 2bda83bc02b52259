package input

import (
	"fmt"
	"io"
	"os"
)

// StdinReader reads all data from stdin.
type StdinReader struct {
	r io.Reader
}

// NewStdinReader creates a new StdinReader.
func NewStdinReader() *StdinReader {
	return &StdinReader{r: os.Stdin}
}

func (r *StdinReader) Read(_ string) (ReadResult, error) {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read standard input: %w", err)
	}
	return ReadResult{Data: data, Closer: noopCloser}, nil
}
