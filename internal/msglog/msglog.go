package msglog

import (
	"time"
)

// Kind classifies a message for presentation only.
type Kind int

const (
	Info      Kind = iota // status and help text
	Echo                  // the command line the user typed
	Error                 // a recoverable failure
	Narrative             // text from the loaded adventure
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Info:
		return "info"
	case Echo:
		return "echo"
	case Error:
		return "error"
	case Narrative:
		return "narrative"
	default:
		return "unknown"
	}
}

// Message is a single immutable log entry.
type Message struct {
	Time time.Time
	Kind Kind
	Text string
}

// Log is a bounded FIFO of messages. The zero value is not usable; call New.
type Log struct {
	entries  []Message
	capacity int
	now      func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the time source used to stamp new messages.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates an empty log holding at most capacity messages.
func New(capacity int, opts ...Option) *Log {
	l := &Log{
		capacity: clamp(capacity),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func clamp(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}

// Append stamps text with the current time and adds it to the end of the log,
// evicting the oldest entry first when the log is full.
func (l *Log) Append(kind Kind, text string) {
	if len(l.entries) >= l.capacity {
		l.evict(len(l.entries) - l.capacity + 1)
	}
	l.entries = append(l.entries, Message{Time: l.now(), Kind: kind, Text: text})
}

// Resize changes the capacity. Shrinking evicts the oldest entries until the
// log fits. Values below one are treated as one.
func (l *Log) Resize(capacity int) {
	l.capacity = clamp(capacity)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.evict(over)
	}
}

// evict drops the n oldest entries.
func (l *Log) evict(n int) {
	copy(l.entries, l.entries[n:])
	for i := len(l.entries) - n; i < len(l.entries); i++ {
		l.entries[i] = Message{}
	}
	l.entries = l.entries[:len(l.entries)-n]
}

// Clear removes every entry. Clearing an empty log is a no-op.
func (l *Log) Clear() {
	l.entries = nil
}

// Entries returns a copy of the current entries, oldest first.
func (l *Log) Entries() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries currently held.
func (l *Log) Len() int { return len(l.entries) }

// Cap returns the current capacity.
func (l *Log) Cap() int { return l.capacity }
