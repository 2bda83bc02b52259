package input

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrBinary is returned for content that contains NUL bytes.
	ErrBinary = errors.New("binary content")
	// ErrInvalidUTF8 is returned for content that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// TextError reports content that could be read but is not searchable text.
type TextError struct {
	Path string
	Err  error
}

func (e *TextError) Error() string {
	path := e.Path
	if path == StdinPath {
		path = "(standard input)"
	}
	return path + ": " + e.Err.Error()
}

func (e *TextError) Unwrap() error { return e.Err }

// binaryScanLimit matches GNU grep: only the first 8KB is checked for NUL.
const binaryScanLimit = 8192

// IsBinary checks if data appears to be binary by scanning for NUL bytes
// in the first 8KB.
func IsBinary(data []byte) bool {
	limit := min(len(data), binaryScanLimit)
	return bytes.IndexByte(data[:limit], 0) >= 0
}

// DecodeText turns raw file content into a string.
// A leading byte order mark is removed; UTF-16 content marked with a BOM is
// converted to UTF-8. The result never aliases data.
func DecodeText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if !hasUTF16BOM(data) && !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", err
	}
	if IsBinary(decoded) {
		return "", ErrBinary
	}
	return string(decoded), nil
}

func hasUTF16BOM(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	return (data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE)
}
