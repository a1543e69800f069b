// Command init_snapshots creates the registry_snapshots table used by the
// optional snapshot archive.
//
// Usage:
//
//	go run cmd/tools/init_snapshots/main.go
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const createTable = `
CREATE TABLE IF NOT EXISTS registry_snapshots (
	run_id     UUID PRIMARY KEY,
	mode       TEXT NOT NULL,
	version    INTEGER NOT NULL,
	team_count INTEGER NOT NULL,
	document   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS registry_snapshots_created_at_idx
	ON registry_snapshots (created_at DESC);
`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, createTable); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create registry_snapshots table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("registry_snapshots table ready")
}
