package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/minigrep/internal/input"
	"github.com/dl/minigrep/internal/matcher"
	"github.com/dl/minigrep/internal/output"
	"github.com/dl/minigrep/internal/scheduler"
)

// ParallelThreshold is the text size from which lines are searched by a
// worker pool instead of sequentially.
const ParallelThreshold = 1 << 20

// Run executes the search with the given config and writes results to stdout.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
// Nothing is written to stdout when an error occurs.
func Run(cfg Config, stdout *os.File, logger *log.Logger) int {
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return ExitError
	}

	text, err := input.ReadText(input.NewFileReader(cfg.MmapThreshold), cfg.Path)
	if err != nil {
		logger.Error("cannot read file", "path", cfg.Path, "err", err)
		return ExitError
	}

	m := matcher.NewMatcher(cfg.Pattern, cfg.MatchOptions())
	result := output.Result{FilePath: cfg.Path}
	if cfg.CountOnly && !parallel(cfg, text) {
		result.MatchCount = m.Count(text)
	} else {
		matches := search(m, text, cfg, logger)
		if cfg.CountOnly {
			result.MatchCount = len(matches)
		} else {
			result.Matches = matches
		}
	}
	logger.Debug("search complete",
		"path", cfg.Path,
		"bytes", len(text),
		"ignore_case", m.IgnoreCase(),
		"matching_lines", result.Count(),
	)

	data := newFormatter(cfg, stdout).Format(nil, result)
	if _, err := output.NewWriter(stdout).Write(data); err != nil {
		logger.Error("write failed", "err", err)
		return ExitError
	}

	if result.HasMatch() {
		return ExitMatch
	}
	return ExitNoMatch
}

func parallel(cfg Config, text string) bool {
	return cfg.Workers != 1 && len(text) >= ParallelThreshold
}

func search(m *matcher.Matcher, text string, cfg Config, logger *log.Logger) []matcher.Match {
	if !parallel(cfg, text) {
		return m.FindAll(text)
	}
	s := scheduler.New(cfg.Workers, m)
	logger.Debug("parallel search", "workers", s.Workers(), "chunk_lines", s.ChunkLines)
	return s.Search(text)
}

func newFormatter(cfg Config, stdout *os.File) output.Formatter {
	switch {
	case cfg.JSONOutput:
		return output.NewJSONFormatter()
	case cfg.CountOnly:
		return output.NewCountFormatter()
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.IsTerminal(stdout.Fd())
	}

	styles := output.NoStyles()
	if useColor {
		styles = output.NewStyles()
	}
	return output.NewTextFormatter(styles, cfg.LineNumbers)
}
