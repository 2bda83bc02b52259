package scheduler

import (
	"runtime"
	"strings"
	"sync"

	"github.com/dl/minigrep/internal/matcher"
)

// DefaultChunkLines is the number of lines handed to a worker at a time.
const DefaultChunkLines = 4096

// Chunk is a contiguous run of whole lines from the searched text.
type Chunk struct {
	SeqNum    int    // 1-based position of the chunk in the text
	FirstLine int    // line number of the first line in Text
	Text      string // lines including their terminators
}

// Result holds the matches found in one chunk.
type Result struct {
	SeqNum  int
	Matches []matcher.Match
}

// Scheduler manages a pool of workers that search chunks of lines concurrently.
type Scheduler struct {
	workers    int
	matcher    *matcher.Matcher
	ChunkLines int
}

// New creates a Scheduler with the given number of workers.
// If workers is 0, defaults to NumCPU.
func New(workers int, m *matcher.Matcher) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers:    workers,
		matcher:    m,
		ChunkLines: DefaultChunkLines,
	}
}

// Workers returns the size of the worker pool.
func (s *Scheduler) Workers() int { return s.workers }

// Search finds all matching lines in contents. The result is identical to
// Matcher.FindAll: matches are returned in ascending line order.
func (s *Scheduler) Search(contents string) []matcher.Match {
	return Collect(s.Run(Split(contents, s.ChunkLines)))
}

// Run processes chunks from the channel and returns results on the result channel.
// Results arrive in completion order; use Collect to restore chunk order.
func (s *Scheduler) Run(chunks <-chan Chunk) <-chan Result {
	resultCh := make(chan Result, s.workers*2)

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				resultCh <- Result{
					SeqNum:  c.SeqNum,
					Matches: s.matcher.FindAllAt(c.Text, c.FirstLine),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

// Split cuts contents into chunks of at most n lines. Chunk boundaries fall
// directly after a newline, so each chunk splits into the same lines it
// would have produced as part of the whole text.
func Split(contents string, n int) <-chan Chunk {
	if n <= 0 {
		n = DefaultChunkLines
	}
	ch := make(chan Chunk, 16)
	go func() {
		defer close(ch)
		seq := 0
		line := 1
		remaining := contents
		for len(remaining) > 0 {
			end, lines := cutLines(remaining, n)
			seq++
			ch <- Chunk{SeqNum: seq, FirstLine: line, Text: remaining[:end]}
			remaining = remaining[end:]
			line += lines
		}
	}()
	return ch
}

// cutLines returns the byte length of the first n lines of s and the number
// of lines it covers.
func cutLines(s string, n int) (int, int) {
	end := 0
	for lines := 0; lines < n; lines++ {
		idx := strings.IndexByte(s[end:], '\n')
		if idx < 0 {
			return len(s), lines + 1
		}
		end += idx + 1
		if end == len(s) {
			return end, lines + 1
		}
	}
	return end, n
}

// Collect drains results, buffering out-of-order chunks, and concatenates
// their matches in sequence-number order.
func Collect(results <-chan Result) []matcher.Match {
	var matches []matcher.Match
	nextSeq := 1
	pending := make(map[int]Result)

	for r := range results {
		pending[r.SeqNum] = r
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			matches = append(matches, p.Matches...)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
	return matches
}
