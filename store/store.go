package store

import (
	"strings"
	"sync"
	"time"

	"github.com/ringlog/ringlog/core"
	"github.com/ringlog/ringlog/sink"
	"github.com/ringlog/ringlog/spinlock"
)

// DefaultCapacity is the history bound used when none is configured.
const DefaultCapacity = 500

// Store is a bounded, ordered, in-memory collection of the most
// recent log records, shared by every goroutine in the process.
//
// All state is guarded by a single lock, a SpinLock unless another
// sync.Locker is injected. Every exported operation holds the lock
// for its entire body, including the synchronous console and file
// writes, so a slow sink stalls concurrent loggers. Critical
// sections are tiny otherwise; the facility is a diagnostic path,
// not a throughput path.
type Store struct {
	mu sync.Locker

	history   []core.Record
	cursor    int
	capacity  int
	verbosity core.Priority

	console sink.Sink
	file    sink.Sink
	fileOn  bool
	extra   sink.Sink

	pending         strings.Builder
	pendingPriority core.Priority
	state           streamState
}

// Builder provides a fluent API for building Store instances
type Builder struct {
	mu        sync.Locker
	capacity  int
	verbosity core.Priority
	console   sink.Sink
	file      sink.Sink
	fileOn    bool
	extra     []sink.Sink
}

// NewBuilder creates a new store builder with the defaults of the
// original facility: capacity 500, verbosity Message, a colorized
// stdout console sink, no file sink.
func NewBuilder() *Builder {
	return &Builder{
		mu:        &spinlock.SpinLock{},
		capacity:  DefaultCapacity,
		verbosity: core.Message,
		console:   sink.NewConsoleSink(sink.ConsoleConfig{Colorize: true}),
	}
}

// WithCapacity sets the history bound. Values below one fall back to
// the default.
func (b *Builder) WithCapacity(n int) *Builder {
	if n > 0 {
		b.capacity = n
	}
	return b
}

// WithVerbosity sets the minimum priority emitted to the console
func (b *Builder) WithVerbosity(p core.Priority) *Builder {
	b.verbosity = p
	return b
}

// WithLocker substitutes the mutual-exclusion primitive. Passing a
// *sync.Mutex makes the store spin-free for environments where busy
// waiting is undesirable.
func (b *Builder) WithLocker(mu sync.Locker) *Builder {
	if mu != nil {
		b.mu = mu
	}
	return b
}

// WithConsole replaces the console sink. A nil sink disables console
// output entirely.
func (b *Builder) WithConsole(s sink.Sink) *Builder {
	b.console = s
	return b
}

// WithFile configures a file sink at path. The sink stays inactive
// until LogToFile(true).
func (b *Builder) WithFile(path string) *Builder {
	b.file = sink.NewFileSink(sink.FileConfig{Path: path})
	return b
}

// WithFileSink replaces the file sink with an arbitrary implementation
func (b *Builder) WithFileSink(s sink.Sink) *Builder {
	b.file = s
	return b
}

// WithLogToFile sets the initial state of the file-sink gate
func (b *Builder) WithLogToFile(on bool) *Builder {
	b.fileOn = on
	return b
}

// WithSinks attaches additional sinks that receive every committed
// record regardless of verbosity, e.g. a ZapSink bridge.
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.extra = append(b.extra, sinks...)
	return b
}

// Build creates the Store instance
func (b *Builder) Build() *Store {
	s := &Store{
		mu:              b.mu,
		history:         make([]core.Record, 0, b.capacity),
		capacity:        b.capacity,
		verbosity:       b.verbosity,
		console:         b.console,
		file:            b.file,
		fileOn:          b.fileOn,
		pendingPriority: core.Message,
	}
	switch len(b.extra) {
	case 0:
	case 1:
		s.extra = b.extra[0]
	default:
		s.extra = sink.NewMultiSink(b.extra...)
	}
	return s
}

// Record commits a message built from the given parts at priority p.
// The record always enters the history; the verbosity threshold only
// gates the console write.
func (s *Store) Record(p core.Priority, parts ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(p, core.Join(parts...))
}

// Debug commits a Debugging record
func (s *Store) Debug(parts ...any) {
	s.Record(core.Debugging, parts...)
}

// Message commits a Message record
func (s *Store) Message(parts ...any) {
	s.Record(core.Message, parts...)
}

// Warning commits a Warning record
func (s *Store) Warning(parts ...any) {
	s.Record(core.Warning, parts...)
}

// Error commits an Error record
func (s *Store) Error(parts ...any) {
	s.Record(core.Error, parts...)
}

// SetLog injects a record that was fully rendered elsewhere, e.g.
// forwarded from another process. The record enters the history
// as-is, subject to eviction and cursor bookkeeping, but produces no
// timestamping, console or file output. This is the sole ingestion
// point for forwarded logs.
func (s *Store) SetLog(text string, p core.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.push(core.Record{Text: text, Priority: p})
}

// FullLogs returns a snapshot copy of the entire history, oldest
// record first.
func (s *Store) FullLogs() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.history))
	copy(out, s.history)
	return out
}

// Logs returns the text of every record whose priority matches any
// of the given filters, in original order. A record matching more
// than one filter appears once per match, so callers that do not
// want duplicates should not pass overlapping filter sets.
func (s *Store) Logs(priorities ...core.Priority) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, rec := range s.history {
		for _, p := range priorities {
			if rec.Priority == p {
				out = append(out, rec.Text)
			}
		}
	}
	return out
}

// NewLogs returns every record appended since the previous NewLogs
// call (or since creation, the first time) and advances the read
// cursor to the current tail.
func (s *Store) NewLogs() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.history)-s.cursor)
	copy(out, s.history[s.cursor:])
	s.cursor = len(s.history)
	return out
}

// Len returns the current number of records in the history
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// SetVerbosity sets the minimum priority emitted to the console.
// core.None suppresses console output entirely. Takes effect for
// subsequent commits only.
func (s *Store) SetVerbosity(p core.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbosity = p
}

// Verbosity returns the current console verbosity threshold
func (s *Store) Verbosity() core.Priority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verbosity
}

// LogToFile enables or disables the file sink for subsequent commits
func (s *Store) LogToFile(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileOn = on
}

// Close closes all attached sinks. The history stays readable; Close
// exists so that buffered sinks (e.g. a zap bridge) flush at process
// shutdown.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for _, sk := range []sink.Sink{s.console, s.file, s.extra} {
		if sk == nil {
			continue
		}
		if err := sk.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// commit runs the shared commit sequence. Caller must hold the lock.
func (s *Store) commit(p core.Priority, msg string) {
	rec := core.Record{Text: core.Line(time.Now(), p, msg), Priority: p}

	// Sink failures are swallowed: logging must never fail the host.
	if s.fileOn && s.file != nil {
		_ = s.file.Emit(rec)
	}
	if s.console != nil && p >= s.verbosity {
		_ = s.console.Emit(rec)
	}
	if s.extra != nil {
		_ = s.extra.Emit(rec)
	}

	s.push(rec)
}

// push appends a record and evicts the oldest one when the history
// exceeds capacity, keeping the read cursor on the same logical
// record (floored at zero). Caller must hold the lock.
func (s *Store) push(rec core.Record) {
	s.history = append(s.history, rec)
	if len(s.history) > s.capacity {
		if s.cursor > 0 {
			s.cursor--
		}
		s.history = s.history[1:]
	}
}
