package input

// ReadResult holds the data read from a file and a cleanup function.
// Data may point into a pooled buffer or a memory mapping, so it must not be
// used after Closer has been called.
type ReadResult struct {
	Data   []byte
	Closer func() error
}

// noopCloser avoids allocating a func literal per empty file.
func noopCloser() error { return nil }

// Reader loads the whole content of a file in one pass.
type Reader interface {
	Read(path string) (ReadResult, error)
}

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ReadText reads path with r (or stdin for StdinPath) and decodes it into
// text. The read buffer is released before returning.
func ReadText(r Reader, path string) (string, error) {
	if path == StdinPath {
		r = NewStdinReader()
	}
	res, err := r.Read(path)
	if err != nil {
		return "", err
	}
	defer res.Closer()

	text, err := DecodeText(res.Data)
	if err != nil {
		return "", &TextError{Path: path, Err: err}
	}
	return text, nil
}
