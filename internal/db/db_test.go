package db

import (
	"os"
	"testing"
)

// TestConnectPostgres exercises the Postgres connection when a database
// is available; CI without one skips.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()
}
