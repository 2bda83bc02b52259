package input

import (
	"fmt"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultMmapThreshold is the file size from which FileReader maps files
// instead of copying them into a buffer.
const DefaultMmapThreshold = 4 * 1024 * 1024

// bufPool pools read buffers. Buffers are stored as *[]byte so the pool can
// keep the backing array even after it grows.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// FileReader opens a file once, fstats it and then either preads it into a
// pooled buffer or memory-maps it, depending on its size.
type FileReader struct {
	mmapThreshold int64
}

// NewFileReader creates a FileReader. Files of at least mmapThreshold bytes
// are memory-mapped; a threshold <= 0 disables mapping.
func NewFileReader(mmapThreshold int64) *FileReader {
	return &FileReader{mmapThreshold: mmapThreshold}
}

func (r *FileReader) Read(path string) (ReadResult, error) {
	fd, err := openFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return ReadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		unix.Close(fd)
		return ReadResult{}, fmt.Errorf("read %s: %w", path, unix.EISDIR)
	}

	// Pipes, character devices and procfs files report no useful size.
	size := stat.Size
	if stat.Mode&unix.S_IFMT != unix.S_IFREG || size == 0 {
		res, err := readAll(fd)
		if err != nil {
			return ReadResult{}, fmt.Errorf("read %s: %w", path, err)
		}
		return res, nil
	}

	if r.mmapThreshold > 0 && size >= r.mmapThreshold {
		res, err := readMmap(fd, size)
		if err == nil {
			return res, nil
		}
	}
	res, err := readBuffered(fd, size)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	return res, nil
}

// readBuffered reads size bytes from fd into a pooled buffer.
// Takes ownership of fd.
func readBuffered(fd int, size int64) (ReadResult, error) {
	defer unix.Close(fd)

	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}
	release := func() error {
		*bp = buf[:0]
		bufPool.Put(bp)
		return nil
	}

	var total int
	for total < int(size) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			release()
			return ReadResult{}, err
		}
		if n == 0 {
			break // file shrank since fstat
		}
		total += n
	}

	return ReadResult{Data: buf[:total], Closer: release}, nil
}

// readAll reads fd until EOF into a pooled buffer, growing it as needed.
// Takes ownership of fd. Returns nil Data if nothing was read.
func readAll(fd int) (ReadResult, error) {
	defer unix.Close(fd)

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]
	release := func() error {
		*bp = buf[:0]
		bufPool.Put(bp)
		return nil
	}

	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := unix.Read(fd, buf[len(buf):cap(buf)])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			release()
			return ReadResult{}, err
		}
		if n == 0 {
			break
		}
		buf = buf[:len(buf)+n]
	}

	if len(buf) == 0 {
		release()
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}
	return ReadResult{Data: buf, Closer: release}, nil
}

// readMmap maps size bytes of fd read-only. On success the mapping owns fd;
// on failure fd is left open for the caller's fallback.
func readMmap(fd int, size int64) (ReadResult, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	data, err := syscall.Mmap(fd, 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE|syscall.MAP_POPULATE)
	if err != nil {
		return ReadResult{}, err
	}
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return ReadResult{
		Data: data,
		Closer: func() error {
			err := syscall.Munmap(data)
			unix.Close(fd)
			return err
		},
	}, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOATIME, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
