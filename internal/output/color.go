package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style

	enabled bool
}

// NewStyles creates the default color styles. Color is emitted regardless of
// the terminal, so callers decide beforehand whether color is wanted.
func NewStyles() Styles {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		LineNum:   base.Foreground(lipgloss.Color("2")),            // green
		Separator: base.Foreground(lipgloss.Color("6")),            // cyan
		Match:     base.Foreground(lipgloss.Color("1")).Bold(true), // bold red
		enabled:   true,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Match:     lipgloss.NewStyle(),
	}
}

// Enabled reports whether the styles emit escape sequences.
func (s Styles) Enabled() bool { return s.enabled }

// render appends text in style st. Without color the text is copied
// verbatim; lipgloss would otherwise still rewrite tabs and padding.
func (s Styles) render(buf []byte, st lipgloss.Style, text string) []byte {
	if !s.enabled || text == "" {
		return append(buf, text...)
	}
	return append(buf, st.Render(text)...)
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
