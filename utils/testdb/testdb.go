// Package testdb provides an in-memory SQLite store with the full schema
// for repository and application tests.
package testdb

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/repository/schema"
	_ "modernc.org/sqlite"
)

// New returns a fresh database that is closed when the test ends.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := schema.Ensure(db); err != nil {
		_ = db.Close()
		t.Fatalf("ensure schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Exec runs a statement and fails the test on error.
func Exec(t testing.TB, db *sqlx.DB, query string, args ...any) int64 {
	t.Helper()

	res, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
	id, _ := res.LastInsertId()
	return id
}
