package history

import (
	"fmt"
	"time"

	"github.com/codefionn/rechenschnell/internal/logger"
)

// Capacity is the number of committed evaluations the ledger retains. The
// oldest entry is evicted first; eviction is the only resource bound here.
const Capacity = 10

// Entry is a frozen snapshot of one committed evaluation. Entries are
// immutable once created; recalling one never mutates it.
type Entry struct {
	ID                string
	RawExpression     string
	DisplayExpression string
	Result            string
	CreatedAt         time.Time
}

// Store persists committed entries. Implementations are called once per
// commit and must tolerate that cadence.
type Store interface {
	Insert(Entry) error
	Recent(limit int) ([]Entry, error)
	Clear() error
	Close() error
}

// Ledger is an append-only, capacity-bounded record of committed
// evaluations, most recent first. Identifier generation is per instance
// (timestamp plus a ledger-local counter), so independent ledgers never
// collide, even for entries created within the same millisecond.
//
// Like the editor that owns it, a ledger belongs to a single session and is
// not safe for concurrent use.
type Ledger struct {
	entries []Entry
	seq     uint64
	now     func() time.Time
	store   Store
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithStore attaches a persistence backend. The ledger rehydrates from it on
// construction and mirrors appends and clears into it. Store failures are
// logged and otherwise ignored: a broken history file must never block a
// commit.
func WithStore(s Store) Option {
	return func(l *Ledger) { l.store = s }
}

// New creates a ledger, loading the most recent persisted entries when a
// store is attached.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	if l.store != nil {
		entries, err := l.store.Recent(Capacity)
		if err != nil {
			logger.Warn("history: failed to load persisted entries: %v", err)
		} else {
			l.entries = entries
		}
	}
	return l
}

// Append records a committed evaluation and returns the frozen entry,
// evicting the oldest entry beyond capacity.
func (l *Ledger) Append(raw, display, result string) Entry {
	l.seq++
	ts := l.now()
	entry := Entry{
		ID:                fmt.Sprintf("%d-%d", ts.UnixMilli(), l.seq),
		RawExpression:     raw,
		DisplayExpression: display,
		Result:            result,
		CreatedAt:         ts,
	}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}
	if l.store != nil {
		if err := l.store.Insert(entry); err != nil {
			logger.Warn("history: failed to persist entry %s: %v", entry.ID, err)
		}
	}
	return entry
}

// Entries returns a copy of the retained entries, most recent first.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Clear empties the ledger and its backing store.
func (l *Ledger) Clear() {
	l.entries = nil
	if l.store != nil {
		if err := l.store.Clear(); err != nil {
			logger.Warn("history: failed to clear store: %v", err)
		}
	}
}
