package serial

import (
	"io"
	"log/slog"
	"strings"
)

// LineSink turns a stream of serial bytes into text lines. Test ROMs print
// their results this way. Complete lines are logged and, when configured,
// written to an io.Writer.
type LineSink struct {
	logger *slog.Logger
	out    io.Writer
	line   []byte
	lines  []string
	keep   int
}

type LineSinkOption func(*LineSink)

// WithWriter mirrors every completed line, newline included, to w.
func WithWriter(w io.Writer) LineSinkOption {
	return func(s *LineSink) { s.out = w }
}

// WithLogger replaces the default slog logger. Without it the sink logs to
// whatever slog.Default is when a line completes.
func WithLogger(l *slog.Logger) LineSinkOption {
	return func(s *LineSink) { s.logger = l }
}

// WithHistory keeps the last n completed lines for Lines.
func WithHistory(n int) LineSinkOption {
	return func(s *LineSink) { s.keep = n }
}

func NewLineSink(opts ...LineSinkOption) *LineSink {
	s := &LineSink{
		keep: 64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put consumes one byte. It matches the Sink signature.
func (s *LineSink) Put(b byte) {
	if b == 0 || b == '\n' || b == '\r' {
		s.Flush()
		return
	}
	s.line = append(s.line, b)
}

// Flush completes the pending line, if any.
func (s *LineSink) Flush() {
	if len(s.line) == 0 {
		return
	}
	text := string(s.line)
	s.line = s.line[:0]

	s.log().Info("serial", "line", text)
	if s.out != nil {
		if _, err := io.WriteString(s.out, text+"\n"); err != nil {
			s.log().Warn("serial output write failed", "error", err)
		}
	}

	if s.keep <= 0 {
		return
	}
	s.lines = append(s.lines, text)
	if len(s.lines) > s.keep {
		s.lines = s.lines[len(s.lines)-s.keep:]
	}
}

func (s *LineSink) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Lines returns the retained completed lines, oldest first.
func (s *LineSink) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Pending returns the characters received since the last line break.
func (s *LineSink) Pending() string {
	return string(s.line)
}

// Text returns the retained output as a single string.
func (s *LineSink) Text() string {
	return strings.Join(s.lines, "\n")
}
