package sink

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ringlog/ringlog/core"
)

// ANSI sequences wrapping the priority tag in colorized output.
var colorTags = map[core.Priority]string{
	core.Debugging: "\033[36;1m [DEBUG] \033[0m",
	core.Message:   "\033[32;1m[MESSAGE]\033[0m",
	core.Warning:   "\033[33;1m[WARNING]\033[0m",
	core.Error:     "\033[31;1m [ERROR] \033[0m",
}

// ConsoleSink writes records to a line-oriented stream, one line per
// record, optionally colorizing the priority tag.
type ConsoleSink struct {
	writer   io.Writer
	colorize bool
	mu       sync.Mutex
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Colorize wraps the priority tag in ANSI color codes
	Colorize bool
}

// NewConsoleSink creates a new console sink
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &ConsoleSink{
		writer:   cfg.Writer,
		colorize: cfg.Colorize,
	}
}

// Emit writes the record as one line. When colorizing, the first
// occurrence of the record's tag is replaced; records injected from
// outside may not contain the tag, in which case the line is written
// as-is.
func (s *ConsoleSink) Emit(rec core.Record) error {
	line := rec.Text
	if s.colorize {
		if colored, ok := colorTags[rec.Priority]; ok {
			line = strings.Replace(line, rec.Priority.Tag(), colored, 1)
		}
	}

	s.mu.Lock()
	_, err := io.WriteString(s.writer, line+"\n")
	s.mu.Unlock()
	return err
}

// Close is a no-op; the sink does not own its writer.
func (s *ConsoleSink) Close() error {
	return nil
}
