// Package store holds the client-side state that the browser kept in
// localStorage: the cart line list and the logged-in profile. Values
// are JSON blobs in a small sqlite key/value table, written on every
// mutation and read back once at startup.
package store

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	cartKey = "cart"
	userKey = "current_user"
)

func OpenState(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS state(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// saveValue unconditionally overwrites the previous value; there is no
// merge or optimistic-concurrency check.
func saveValue(db *sqlx.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO state(key,value,updated_at) VALUES(?,?,?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Format(time.RFC3339))
	return err
}

func loadValue(db *sqlx.DB, key string) (string, bool, error) {
	var v string
	if err := db.Get(&v, `SELECT value FROM state WHERE key = ?`, key); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func deleteValue(db *sqlx.DB, key string) error {
	_, err := db.Exec(`DELETE FROM state WHERE key = ?`, key)
	return err
}
