// Package logging builds the charm logger used by the genviz binaries.
package logging

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
	now func() time.Time
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			// keep the partial line for the next write
			t.buf.Reset()
			t.buf.WriteString(line)
			break
		}
		ts := t.now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return n, err
		}
	}
	return n, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so the logger
// can still detect a TTY behind the wrapping writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// Options controls New.
type Options struct {
	// Level is one of debug, info, warn/warning, error. Empty means info.
	Level string
	// Verbose forces debug level.
	Verbose bool
	// File, when set, receives a copy of every log line.
	File string
	// Out defaults to os.Stderr.
	Out *os.File
	// Quiet drops output to Out so only File receives log lines. The
	// terminal browser sets it while it owns the screen.
	Quiet bool
}

// New returns a logger and a close function for the optional log file.
// An unknown level falls back to info and is reported as a warning; a log
// file that cannot be opened is reported and logging continues on Out.
func New(opts Options) (*log.Logger, func()) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	var w io.Writer = out
	if opts.Quiet {
		w = io.Discard
	}
	closeFn := func() {}
	var fileErr error
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			w = io.MultiWriter(w, f)
			closeFn = func() { _ = f.Close() }
		} else {
			fileErr = err
		}
	}
	tw := &timestampWriter{w: w, now: time.Now}
	logger := log.New(&terminalWriter{w: tw, fd: out.Fd()})

	lvl, known := ParseLevel(opts.Level)
	if opts.Verbose {
		lvl, known = log.DebugLevel, true
	}
	logger.SetLevel(lvl)
	if !known {
		logger.Warn("unknown log_level, defaulting to info", "provided", opts.Level)
	}
	if fileErr != nil {
		logger.Warn("log_file could not be opened; logging to stderr only", "path", opts.File, "err", fileErr)
	}
	return logger, closeFn
}

// ParseLevel maps a config level name to a log level. The second result is
// false for names it does not know, in which case info is returned.
func ParseLevel(s string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}
