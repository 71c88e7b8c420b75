package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock() func() time.Time {
	ts := time.Unix(1700000000, 0)
	return func() time.Time { return ts }
}

func TestAppendOrder(t *testing.T) {
	l := New(WithClock(frozenClock()))

	l.Append("7+3", "7+3", "10")
	l.Append("10*2", "10×2", "20")

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "20", entries[0].Result, "most recent first")
	assert.Equal(t, "10", entries[1].Result)
}

func TestIDsUniqueWithinSameMillisecond(t *testing.T) {
	l := New(WithClock(frozenClock()))

	seen := make(map[string]bool)
	for i := 0; i < Capacity; i++ {
		entry := l.Append("1+1", "1+1", "2")
		assert.False(t, seen[entry.ID], "duplicate id %s", entry.ID)
		seen[entry.ID] = true
	}
}

func TestIndependentLedgersDoNotShareSequence(t *testing.T) {
	a := New(WithClock(frozenClock()))
	b := New(WithClock(frozenClock()))

	ea := a.Append("1+1", "1+1", "2")
	eb := b.Append("1+1", "1+1", "2")

	// same clock, same per-instance counter value: ids may match across
	// ledgers, but each ledger's own sequence starts at one
	assert.Equal(t, ea.ID, eb.ID)
}

func TestCapacityEviction(t *testing.T) {
	l := New(WithClock(frozenClock()))

	for i := 0; i < Capacity+1; i++ {
		l.Append(fmt.Sprintf("1+%d", i), fmt.Sprintf("1+%d", i), "x")
	}

	entries := l.Entries()
	require.Len(t, entries, Capacity)
	assert.Equal(t, "1+10", entries[0].RawExpression)
	assert.Equal(t, "1+1", entries[len(entries)-1].RawExpression, "the oldest entry was evicted")
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := New(WithClock(frozenClock()))
	l.Append("7+3", "7+3", "10")

	entries := l.Entries()
	entries[0].Result = "tampered"

	assert.Equal(t, "10", l.Entries()[0].Result)
}

func TestClear(t *testing.T) {
	l := New(WithClock(frozenClock()))
	l.Append("7+3", "7+3", "10")
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

// fakeStore records calls so ledger/store interaction can be asserted
// without SQLite.
type fakeStore struct {
	inserted []Entry
	cleared  bool
	loaded   []Entry
}

func (f *fakeStore) Insert(e Entry) error { f.inserted = append(f.inserted, e); return nil }
func (f *fakeStore) Recent(limit int) ([]Entry, error) {
	if len(f.loaded) > limit {
		return f.loaded[:limit], nil
	}
	return f.loaded, nil
}
func (f *fakeStore) Clear() error { f.cleared = true; return nil }
func (f *fakeStore) Close() error { return nil }

func TestStoreMirroring(t *testing.T) {
	store := &fakeStore{}
	l := New(WithClock(frozenClock()), WithStore(store))

	entry := l.Append("7+3", "7+3", "10")
	require.Len(t, store.inserted, 1)
	assert.Equal(t, entry, store.inserted[0])

	l.Clear()
	assert.True(t, store.cleared)
}

func TestStoreRehydration(t *testing.T) {
	store := &fakeStore{loaded: []Entry{
		{ID: "1-1", RawExpression: "7+3", DisplayExpression: "7+3", Result: "10"},
	}}

	l := New(WithClock(frozenClock()), WithStore(store))
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "10", l.Entries()[0].Result)
}
