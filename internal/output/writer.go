package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer for f.
func NewWriter(f *os.File) *Writer {
	return &Writer{fd: int(f.Fd())}
}

// Write writes data, retrying short and interrupted writes.
func (w *Writer) Write(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		n, err := unix.Writev(w.fd, [][]byte{data[written:]})
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}
