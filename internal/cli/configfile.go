package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// configPathEnv overrides the location of the defaults file.
const configPathEnv = "MINIGREP_CONFIG_PATH"

// ConfigPath returns the location of the defaults file:
// $MINIGREP_CONFIG_PATH, or ~/.minigrep. Returns "" if neither is known.
func ConfigPath() string {
	if path := os.Getenv(configPathEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minigrep")
}

// LoadConfigArgs reads the defaults file and returns its arguments, which
// are placed before the command-line arguments.
// Format: one flag per line, # comments, empty lines ignored. A flag and its
// value may share a line ("--color always").
// Returns nil if no config file is found.
func LoadConfigArgs() []string {
	path := ConfigPath()
	if path == "" {
		return nil
	}
	return loadConfigArgs(path)
}

func loadConfigArgs(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, strings.Fields(line)...)
	}
	return args
}
