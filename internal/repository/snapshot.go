package repository

import (
	"context"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// Snapshot defines the interface for named pouch snapshot storage
type Snapshot interface {
	// SaveSnapshot creates or replaces the snapshot with the same name
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error

	// GetSnapshot returns domain.ErrSnapshotNotFound when no snapshot has that name
	GetSnapshot(ctx context.Context, name string) (*domain.Snapshot, error)

	// ListSnapshots returns summaries, most recently updated first
	ListSnapshots(ctx context.Context, limit int) ([]domain.SnapshotSummary, error)

	// DeleteSnapshot returns domain.ErrSnapshotNotFound when nothing was deleted
	DeleteSnapshot(ctx context.Context, name string) error
}
