package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens the embedded database file. The single connection
// in the pool is the one logical mutation queue the store model assumes.
// A transient open failure is retried once before giving up.
func NewSQLiteConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		time.Sleep(100 * time.Millisecond)
		if err = db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("could not ping the database: %w", err)
		}
	}

	return db, nil
}
