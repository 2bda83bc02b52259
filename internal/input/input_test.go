package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func writeTemp(t testing.TB, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileReader_Read(t *testing.T) {
	content := []byte("hello world\nline two\n")
	path := writeTemp(t, "test.txt", content)

	for _, threshold := range []int64{0, 1, 1024 * 1024} {
		r := NewFileReader(threshold)
		result, err := r.Read(path)
		if err != nil {
			t.Fatalf("threshold %d: Read() error: %v", threshold, err)
		}
		if !bytes.Equal(result.Data, content) {
			t.Errorf("threshold %d: data = %q, want %q", threshold, result.Data, content)
		}
		if err := result.Closer(); err != nil {
			t.Errorf("threshold %d: Closer() error: %v", threshold, err)
		}
	}
}

func TestFileReader_EmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.txt", nil)

	result, err := NewFileReader(DefaultMmapThreshold).Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	defer result.Closer()

	if result.Data != nil {
		t.Errorf("data = %v, want nil for empty file", result.Data)
	}
}

func TestFileReader_LargeFileMapped(t *testing.T) {
	content := bytes.Repeat([]byte("abcdefghij\n"), 200000) // ~2.2MB
	path := writeTemp(t, "large.txt", content)

	result, err := NewFileReader(1024 * 1024).Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !bytes.Equal(result.Data, content) {
		t.Errorf("data length = %d, want %d", len(result.Data), len(content))
	}
	if err := result.Closer(); err != nil {
		t.Errorf("Closer() error: %v", err)
	}
}

func TestFileReader_NonexistentFile(t *testing.T) {
	_, err := NewFileReader(DefaultMmapThreshold).Read("/nonexistent/path/file.txt")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap ErrNotExist", err)
	}
}

func TestFileReader_Directory(t *testing.T) {
	_, err := NewFileReader(DefaultMmapThreshold).Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestFileReader_FIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifo")
	if err := unix.Mkfifo(path, 0600); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	content := strings.Repeat("needle here\n", 20000) // larger than the pooled buffer
	done := make(chan error, 1)
	go func() {
		done <- os.WriteFile(path, []byte(content), 0600)
	}()

	result, err := NewFileReader(1).Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	defer result.Closer()
	if werr := <-done; werr != nil {
		t.Fatalf("write fifo: %v", werr)
	}
	if string(result.Data) != content {
		t.Errorf("data length = %d, want %d", len(result.Data), len(content))
	}
}

func TestFileReader_ProcFile(t *testing.T) {
	const path = "/proc/self/status"
	if _, err := os.Stat(path); err != nil {
		t.Skipf("no procfs: %v", err)
	}

	result, err := NewFileReader(DefaultMmapThreshold).Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	defer result.Closer()
	if !bytes.HasPrefix(result.Data, []byte("Name:")) {
		t.Errorf("data = %q, want procfs status", result.Data)
	}
}

func TestStdinReader(t *testing.T) {
	r := &StdinReader{r: strings.NewReader("from stdin\n")}
	result, err := r.Read(StdinPath)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(result.Data) != "from stdin\n" {
		t.Errorf("data = %q", result.Data)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr error
	}{
		{"empty", nil, "", nil},
		{"ascii", []byte("hello\n"), "hello\n", nil},
		{"utf8", []byte("héllo İstanbul\n"), "héllo İstanbul\n", nil},
		{"utf8 bom stripped", []byte("\xEF\xBB\xBFhello"), "hello", nil},
		{"utf16le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}, "hi\n", nil},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi", nil},
		{"invalid utf8", []byte("bad \xff byte"), "", ErrInvalidUTF8},
		{"nul byte", []byte("hello\x00world"), "", ErrBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeText() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeText_DoesNotAlias(t *testing.T) {
	data := []byte("hello")
	text, err := DecodeText(data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 'j'
	if text != "hello" {
		t.Errorf("text changed to %q after mutating input", text)
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"text only", []byte("hello world\nfoo bar\n"), false},
		{"empty", []byte{}, false},
		{"nul byte", []byte("hello\x00world"), true},
		{"nul at start", []byte{0, 'h', 'e', 'l', 'l', 'o'}, true},
		{"nul at 8KB boundary", append(bytes.Repeat([]byte("a"), 8191), 0), true},
		{"nul past 8KB", append(append(bytes.Repeat([]byte("a"), 8192), 'b'), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	path := writeTemp(t, "poem.txt", []byte("\xEF\xBB\xBFI'm nobody! Who are you?\n"))
	text, err := ReadText(NewFileReader(DefaultMmapThreshold), path)
	if err != nil {
		t.Fatalf("ReadText() error: %v", err)
	}
	if text != "I'm nobody! Who are you?\n" {
		t.Errorf("ReadText() = %q", text)
	}

	bad := writeTemp(t, "bad.bin", []byte("\x00\x01\x02"))
	_, err = ReadText(NewFileReader(DefaultMmapThreshold), bad)
	var te *TextError
	if !errors.As(err, &te) {
		t.Fatalf("ReadText() error = %v, want *TextError", err)
	}
	if !errors.Is(err, ErrBinary) {
		t.Errorf("error %v does not wrap ErrBinary", err)
	}
	if te.Path != bad {
		t.Errorf("TextError.Path = %q, want %q", te.Path, bad)
	}
}

func BenchmarkFileReader(b *testing.B) {
	content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 10000)
	path := writeTemp(b, "bench.txt", content)

	r := NewFileReader(DefaultMmapThreshold)
	b.SetBytes(int64(len(content)))
	for b.Loop() {
		result, err := r.Read(path)
		if err != nil {
			b.Fatal(err)
		}
		result.Closer()
	}
}
