package sink

import (
	"os"
	"path/filepath"

	"github.com/ringlog/ringlog/core"
)

// FileSink appends records to a text file, one line per record.
//
// The file is opened, written and closed within each Emit call. That
// keeps the sink stateless between commits — an external rotation or
// truncation of the file needs no coordination — at the cost of an
// open/close pair per record. For a diagnostic log this is an
// acceptable trade.
type FileSink struct {
	path string
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Path is the log file location. The parent directory is
	// created on first use if missing.
	Path string
}

// NewFileSink creates a new file sink. The path is not opened until
// the first Emit, so a sink for an unwritable location constructs
// fine and fails (silently, from the store's point of view) later.
func NewFileSink(cfg FileConfig) *FileSink {
	return &FileSink{path: cfg.Path}
}

// Path returns the configured file path.
func (s *FileSink) Path() string {
	return s.path
}

// Emit appends one line to the file. Any failure to create the
// directory, open or write is returned to the caller; the store
// discards it, logging is best-effort.
func (s *FileSink) Emit(rec core.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	_, werr := f.WriteString(rec.Text + "\n")
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Close is a no-op; Emit leaves no handle open.
func (s *FileSink) Close() error {
	return nil
}
