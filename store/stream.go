package store

import "github.com/ringlog/ringlog/core"

// streamState tracks the incremental message builder. Committing is
// transient inside Flush, so only the two resting states are stored.
type streamState int8

const (
	idle streamState = iota
	accumulating
)

// Append adds the textual form of each part to the pending message
// without committing it. Calls chain:
//
//	s.Append("loaded ").Append(n).Append(" modules").Flush()
func (s *Store) Append(parts ...any) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range parts {
		s.pending.WriteString(core.Text(p))
	}
	s.state = accumulating
	return s
}

// SetPriority sets the priority the pending message will be
// committed at. The default is Message, restored after every Flush.
func (s *Store) SetPriority(p core.Priority) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPriority = p
	s.state = accumulating
	return s
}

// Flush commits the pending message and resets the builder to idle.
//
// Unlike Record, Flush drops the message entirely — not just from
// the console — when the pending priority is below the verbosity
// threshold. Sub-threshold streamed messages therefore never reach
// the history, while sub-threshold Record calls are retained and
// merely hidden from the console. The asymmetry is inherited
// behavior that downstream consumers rely on; see Store docs.
//
// Flush with nothing pending is a no-op.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == idle {
		return
	}
	if s.pendingPriority >= s.verbosity {
		s.commit(s.pendingPriority, s.pending.String())
	}
	s.pending.Reset()
	s.pendingPriority = core.Message
	s.state = idle
}
