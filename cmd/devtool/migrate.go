package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PouchSim_Go/internal/config"
	"github.com/osse101/PouchSim_Go/internal/database"
	"github.com/osse101/PouchSim_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded snapshot migrations"
}

func (c *MigrateCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Migrating %s@%s", cfg.DBName, cfg.DBHost))

	pool, err := database.NewPool(cfg.GetDBConnString(), 2, time.Minute, time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	version, err := database.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		return err
	}
	PrintSuccess("Database at migration version %d", version)
	return nil
}
