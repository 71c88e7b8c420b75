package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, dir string) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	return store
}

func testEntry(i int) Entry {
	return Entry{
		ID:                fmt.Sprintf("1700000000000-%d", i),
		RawExpression:     fmt.Sprintf("1+%d", i),
		DisplayExpression: fmt.Sprintf("1+%d", i),
		Result:            fmt.Sprintf("%d", 1+i),
		CreatedAt:         time.Unix(1700000000, 0).UTC(),
	}
}

func TestStoreInsertAndRecent(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)
	defer store.Close()

	require.NoError(t, store.Insert(testEntry(1)))
	require.NoError(t, store.Insert(testEntry(2)))

	entries, err := store.Recent(Capacity)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1+2", entries[0].RawExpression, "most recent first")
	assert.Equal(t, "1+1", entries[1].RawExpression)
	assert.Equal(t, testEntry(1).CreatedAt.Unix(), entries[1].CreatedAt.Unix())
}

func TestStorePrunesBeyondCapacity(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)
	defer store.Close()

	for i := 0; i < Capacity+2; i++ {
		require.NoError(t, store.Insert(testEntry(i)))
	}

	entries, err := store.Recent(Capacity + 2)
	require.NoError(t, err)
	require.Len(t, entries, Capacity, "older rows are pruned on insert")
	assert.Equal(t, fmt.Sprintf("1+%d", Capacity+1), entries[0].RawExpression)
}

func TestStoreClear(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)
	defer store.Close()

	require.NoError(t, store.Insert(testEntry(1)))
	require.NoError(t, store.Clear())

	entries, err := store.Recent(Capacity)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, store.Insert(testEntry(1)))
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	defer reopened.Close()

	entries, err := reopened.Recent(Capacity)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1+1", entries[0].RawExpression)
}

func TestLedgerWithSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)
	defer store.Close()

	l := New(WithClock(func() time.Time { return time.Unix(1700000000, 0) }), WithStore(store))
	l.Append("7+3", "7+3", "10")

	rehydrated := New(WithStore(store))
	require.Equal(t, 1, rehydrated.Len())
	assert.Equal(t, "10", rehydrated.Entries()[0].Result)
}
