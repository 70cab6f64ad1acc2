package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// MockSnapshotRepository is a mock implementation of repository.Snapshot
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) GetSnapshot(ctx context.Context, name string) (*domain.Snapshot, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context, limit int) ([]domain.SnapshotSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SnapshotSummary), args.Error(1)
}

func (m *MockSnapshotRepository) DeleteSnapshot(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
