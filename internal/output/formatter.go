package output

// Formatter formats a Result into bytes for output.
// Implementations append to buf and return the extended slice, so callers
// can pass buf[:0] to reuse the underlying array.
type Formatter interface {
	Format(buf []byte, result Result) []byte
}
