package db

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
)

var testDBCounter atomic.Int64

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database; a named shared-cache DSN makes the pool share one database
	// per test.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
