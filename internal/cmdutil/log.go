// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console colours.
var (
	colorDebug = lipgloss.Color("#6699CC")
	colorWarn  = lipgloss.Color("#EECC66")
	colorError = lipgloss.Color("#CC3311")
)

// Logger writes levelled console messages. Prefixes are styled only when the
// destination is a terminal, so pipes and test buffers see plain text.
type Logger struct {
	w     io.Writer
	debug bool
	quiet bool

	debugStyle lipgloss.Style
	warnStyle  lipgloss.Style
	errorStyle lipgloss.Style
	styled     bool
}

// NewLogger returns a Logger on w. debug enables Debugf; quiet silences
// Infof and Warnf. Errors are always written.
func NewLogger(w io.Writer, debug, quiet bool) *Logger {
	r := lipgloss.NewRenderer(w)
	return &Logger{
		w:          w,
		debug:      debug,
		quiet:      quiet,
		debugStyle: r.NewStyle().Foreground(colorDebug),
		warnStyle:  r.NewStyle().Foreground(colorWarn).Bold(true),
		errorStyle: r.NewStyle().Foreground(colorError).Bold(true),
		styled:     IsTerminal(w),
	}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DebugEnabled reports whether Debugf writes anything.
func (l *Logger) DebugEnabled() bool { return l != nil && l.debug }

func (l *Logger) Debugf(format string, a ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.emit(l.debugStyle, "DEBUG: ", format, a...)
}

func (l *Logger) Infof(format string, a ...any) {
	if l == nil || l.quiet {
		return
	}
	_, _ = fmt.Fprintf(l.w, format+"\n", a...)
}

func (l *Logger) Warnf(format string, a ...any) {
	if l == nil || l.quiet {
		return
	}
	l.emit(l.warnStyle, "WARN: ", format, a...)
}

func (l *Logger) Errorf(format string, a ...any) {
	if l == nil {
		return
	}
	l.emit(l.errorStyle, "error: ", format, a...)
}

func (l *Logger) emit(st lipgloss.Style, prefix, format string, a ...any) {
	if l.styled {
		prefix = st.Render(prefix)
	}
	_, _ = fmt.Fprintf(l.w, prefix+format+"\n", a...)
}
