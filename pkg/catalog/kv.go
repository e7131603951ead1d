package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// KV is the persisted key-value contract the store is built on. Get
// reports ok=false when the key has never been written.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Close() error
}

// DB is the sqlite-backed KV used in production.
type DB struct {
	db      *sql.DB
	dataDir string
}

// NewDB opens (creating if needed) the catalog database under dataDir.
func NewDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db, dataDir: dataDir}
	if err := d.init(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	return d, nil
}

// init creates the database schema
func (d *DB) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Get retrieves a value by key
func (d *DB) Get(key string) ([]byte, bool, error) {
	var value string
	err := d.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set writes a value, replacing any previous one
func (d *DB) Set(key string, value []byte) error {
	query := `
	INSERT OR REPLACE INTO kv (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	`
	_, err := d.db.Exec(query, key, string(value))
	return err
}

// Close closes the underlying database
func (d *DB) Close() error {
	return d.db.Close()
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	values map[string][]byte

	// FailSet, when set, makes every Set return this error. Used to
	// verify that failed mutations leave the persisted catalog alone.
	FailSet error
}

// NewMemKV returns an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{values: map[string][]byte{}}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemKV) Close() error { return nil }
