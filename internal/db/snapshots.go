package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/itsJawnn/val-teamdb/internal/registry"
)

// Snapshot is one archived registry document.
type Snapshot struct {
	RunID     uuid.UUID
	Mode      string
	Version   int
	TeamCount int
	CreatedAt time.Time
}

// SaveSnapshot archives a registry document produced by one pipeline run.
// Mode is "cleanup" or "expand".
func (db *DB) SaveSnapshot(ctx context.Context, runID uuid.UUID, mode string, reg *registry.Registry) error {
	document, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to marshal registry snapshot: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO registry_snapshots (run_id, mode, version, team_count, document)
		 VALUES ($1, $2, $3, $4, $5)`,
		runID, mode, reg.Version, len(reg.Teams), document,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", runID, err)
	}
	return nil
}

// ListSnapshots returns archived snapshots, newest first.
func (db *DB) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT run_id, mode, version, team_count, created_at
		 FROM registry_snapshots
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.RunID, &s.Mode, &s.Version, &s.TeamCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return snapshots, nil
}

// GetSnapshot loads one archived registry document by run ID.
func (db *DB) GetSnapshot(ctx context.Context, runID uuid.UUID) (*registry.Registry, error) {
	var document []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM registry_snapshots WHERE run_id = $1`,
		runID,
	).Scan(&document)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", runID, err)
	}

	var reg registry.Registry
	if err := json.Unmarshal(document, &reg); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", runID, err)
	}
	return &reg, nil
}
