package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitMatch   = 0 // at least one line matched
	ExitNoMatch = 1 // no line matched
	ExitError   = 2 // configuration or I/O error
)

// Main runs minigrep with args (without the program name) and returns the
// process exit code. Arguments from the defaults file come first.
func Main(args []string) int {
	return runMain(args, os.Stdout, os.Stderr)
}

func runMain(args []string, stdout *os.File, stderr io.Writer) int {
	logger := NewLogger(stderr)
	code := ExitMatch

	cmd := NewRootCommand(func(cfg Config) {
		if cfg.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		code = Run(cfg, stdout, logger)
	})
	// Never nil: cobra reads os.Args for a nil slice.
	all := append([]string{}, LoadConfigArgs()...)
	cmd.SetArgs(append(all, args...))

	if err := cmd.Execute(); err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			logger.Error("invalid arguments", "err", cerr.Err)
		} else {
			logger.Error(err)
		}
		return ExitError
	}
	return code
}

// NewLogger creates the stderr logger. Only warnings and errors are shown
// unless --verbose is set.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "minigrep",
	})
}

// NewRootCommand builds the minigrep command. run is called with the
// validated configuration.
func NewRootCommand(run func(Config)) *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "minigrep [flags] PATTERN FILE",
		Short: "Print lines of FILE that contain the literal string PATTERN",
		Long: "minigrep prints every line of FILE containing PATTERN, highlighting each occurrence.\n" +
			"PATTERN is a literal string, not a regular expression. Use - as FILE to read standard input.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return &ConfigError{Err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Path = args[1]
			if err := cfg.Validate(); err != nil {
				return err
			}
			run(cfg)
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ConfigError{Err: err}
	})

	bindFlags(cmd, &cfg)
	return cmd
}

func bindFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", cfg.IgnoreCase, "case insensitive pattern matching")
	flags.BoolVarP(&cfg.SmartCase, "smart-case", "S", cfg.SmartCase, "ignore case unless PATTERN contains an uppercase letter")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", cfg.LineNumbers, "prefix each line with its line number")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", cfg.CountOnly, "print only the number of matching lines")
	flags.BoolVar(&cfg.JSONOutput, "json", cfg.JSONOutput, "print matches as JSON Lines")
	flags.Var(&cfg.Color, "color", "colorize output: auto, always or never")
	flags.IntVarP(&cfg.Workers, "threads", "j", cfg.Workers, "worker threads for large files (0 = number of CPUs)")
	flags.Int64Var(&cfg.MmapThreshold, "mmap-threshold", cfg.MmapThreshold, "memory-map files of at least this many bytes (0 = never)")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log debug information to stderr")
}
