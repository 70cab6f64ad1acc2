package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PouchSim_Go/internal/config"
	"github.com/osse101/PouchSim_Go/internal/database"
	"github.com/osse101/PouchSim_Go/internal/database/postgres"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/repository"
	"github.com/osse101/PouchSim_Go/migrations"
)

// Storage holds the optional snapshot store. Both fields are nil when
// snapshots are disabled.
type Storage struct {
	Pool      *pgxpool.Pool
	Snapshots repository.Snapshot
}

// HealthPool returns the pool for readiness checks, or an untyped nil so
// the readiness handler sees no database at all
func (s *Storage) HealthPool() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// InitializeStorage connects to PostgreSQL and applies the embedded
// migrations when snapshots are enabled
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.SnapshotsEnabled {
		logger.Info(LogMsgSnapshotsDisabled)
		return &Storage{}, nil
	}

	logger.Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "db", cfg.DBName)
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	version, err := database.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	logger.Info(LogMsgMigrationsApplied, "version", version)

	return &Storage{
		Pool:      pool,
		Snapshots: postgres.NewSnapshotRepository(pool),
	}, nil
}
