package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists history entries in a SQLite database. It keeps at
// most Capacity rows, pruning the oldest on every insert so the file stays
// bounded along with the in-memory ledger.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLiteStore opens the history database at dbPath, creating the file
// and its directory if necessary.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return store, nil
}

// migrate ensures the database schema exists.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		raw_expression TEXT NOT NULL,
		display_expression TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Insert stores one committed entry and prunes rows beyond the retention
// window, oldest first.
func (s *SQLiteStore) Insert(e Entry) error {
	if _, err := s.db.Exec(`
		INSERT OR REPLACE INTO history (id, raw_expression, display_expression, result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.RawExpression, e.DisplayExpression, e.Result, e.CreatedAt); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		DELETE FROM history WHERE rowid NOT IN (
			SELECT rowid FROM history ORDER BY rowid DESC LIMIT ?
		)
	`, Capacity)
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, raw_expression, display_expression, result, created_at
		FROM history ORDER BY rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RawExpression, &e.DisplayExpression, &e.Result, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every persisted entry.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
