package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/repository"
)

// SnapshotRepository implements repository.Snapshot on the pouch_snapshots table
type SnapshotRepository struct {
	db *pgxpool.Pool
}

var _ repository.Snapshot = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveSnapshot upserts by name and fills the stored timestamps back in
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	stacks := snapshot.Stacks
	if stacks == nil {
		stacks = []domain.StackRecord{}
	}
	stacksJSON, err := json.Marshal(stacks)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalStacks, err)
	}

	query := `
		INSERT INTO pouch_snapshots (name, stacks)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET stacks = EXCLUDED.stacks, updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, snapshot.Name, stacksJSON).Scan(&snapshot.CreatedAt, &snapshot.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrFmtSaveSnapshot, domain.ErrDatabase, snapshot.Name, err)
	}
	return nil
}

// GetSnapshot loads a snapshot by name
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, name string) (*domain.Snapshot, error) {
	query := `
		SELECT name, stacks, created_at, updated_at
		FROM pouch_snapshots
		WHERE name = $1
	`

	var snap domain.Snapshot
	var stacksJSON []byte
	err := r.db.QueryRow(ctx, query, name).Scan(&snap.Name, &stacksJSON, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(ErrFmtSnapshotMissing, domain.ErrSnapshotNotFound, name)
		}
		return nil, fmt.Errorf(ErrFmtGetSnapshot, domain.ErrDatabase, name, err)
	}

	if err := json.Unmarshal(stacksJSON, &snap.Stacks); err != nil {
		return nil, fmt.Errorf(ErrMsgUnmarshalStacks, err)
	}
	return &snap, nil
}

// ListSnapshots returns summaries, most recently updated first
func (r *SnapshotRepository) ListSnapshots(ctx context.Context, limit int) ([]domain.SnapshotSummary, error) {
	query := `
		SELECT name, jsonb_array_length(stacks) AS slots, updated_at
		FROM pouch_snapshots
		ORDER BY updated_at DESC, name
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListSnapshots, domain.ErrDatabase, err)
	}

	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SnapshotSummary])
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListSnapshots, domain.ErrDatabase, err)
	}
	return summaries, nil
}

// DeleteSnapshot removes a snapshot by name
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pouch_snapshots WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf(ErrFmtDeleteSnapshot, domain.ErrDatabase, name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrFmtSnapshotMissing, domain.ErrSnapshotNotFound, name)
	}
	return nil
}
