// Package console writes human-oriented progress and error messages for the
// command-line tools. Output is coloured when the writer is a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level constants for filtering.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Reporter writes levelled messages to a writer. It is safe for concurrent
// use. A nil writer discards everything.
type Reporter struct {
	w     io.Writer
	level int
	color bool
	mu    sync.Mutex
}

// New returns a Reporter writing messages at or above level to w. Colour is
// enabled when w is a terminal and NO_COLOR is not set.
func New(w io.Writer, level int) *Reporter {
	return &Reporter{
		w:     w,
		level: level,
		color: isTerminal(w),
	}
}

// isTerminal reports whether w is a file attached to a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor forces colour output on or off.
func (r *Reporter) SetColor(enable bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.color = enable
}

// ParseLevel converts a level name (debug, info, warn, error) to a level.
// Unknown names mean info.
func ParseLevel(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Debugf logs a debug message.
func (r *Reporter) Debugf(format string, args ...any) {
	r.logf(LevelDebug, format, args...)
}

// Infof logs an informational message.
func (r *Reporter) Infof(format string, args ...any) {
	r.logf(LevelInfo, format, args...)
}

// Warnf logs a warning.
func (r *Reporter) Warnf(format string, args ...any) {
	r.logf(LevelWarn, format, args...)
}

// Errorf logs an error.
func (r *Reporter) Errorf(format string, args ...any) {
	r.logf(LevelError, format, args...)
}

// Trace returns a writer that logs each write as a debug message, for use
// with the library's trace logging.
func (r *Reporter) Trace() io.Writer {
	return traceWriter{r}
}

type traceWriter struct{ r *Reporter }

func (t traceWriter) Write(p []byte) (int, error) {
	t.r.logf(LevelDebug, "%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func (r *Reporter) logf(level int, format string, args ...any) {
	if r == nil || r.w == nil || level < r.level {
		return
	}
	msg := fmt.Sprintf(format, args...)

	r.mu.Lock()
	defer r.mu.Unlock()

	tag := levelTag(level)
	if r.color {
		c := levelColor(level)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(r.w, "[%s] %s\n", tag, msg)
}

func levelTag(level int) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

func levelColor(level int) *color.Color {
	switch level {
	case LevelDebug:
		return color.New(color.FgHiBlack)
	case LevelWarn:
		return color.New(color.FgYellow)
	case LevelError:
		return color.New(color.FgRed)
	}
	return color.New(color.FgBlue)
}
