package status

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a durable Store backend for SAV/LOA targets that name a
// file path, adapted from the teacher's sqlite.go/sqlite_schema.go: the
// same pragma setup and prepared-statement idiom, applied to a single
// blob-per-path table since a status payload is already one self-contained
// JSON document rather than a relational thought/branch graph.
type SQLiteStore struct {
	db       *sql.DB
	stmtPut  *sql.Stmt
	stmtGet  *sql.Stmt
}

// NewSQLiteStore opens (creating if needed) a sqlite-backed store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("status: sqlite store requires a non-empty path")
	}
	dsn := dbPath + "?_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("status: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("status: ping sqlite: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("status: %s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		path TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		saved_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("status: create schema: %w", err)
	}

	s := &SQLiteStore{db: db}
	if s.stmtPut, err = db.Prepare(`INSERT INTO snapshots (path, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("status: prepare put: %w", err)
	}
	if s.stmtGet, err = db.Prepare(`SELECT payload FROM snapshots WHERE path = ?`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("status: prepare get: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Put(path string, payload []byte) error {
	if _, err := s.stmtPut.Exec(path, payload, time.Now().Unix()); err != nil {
		return fmt.Errorf("status: sqlite put %q: %w", path, err)
	}
	return nil
}

func (s *SQLiteStore) Get(path string) ([]byte, error) {
	var payload []byte
	if err := s.stmtGet.QueryRow(path).Scan(&payload); err != nil {
		return nil, fmt.Errorf("status: sqlite get %q: %w", path, err)
	}
	return payload, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
