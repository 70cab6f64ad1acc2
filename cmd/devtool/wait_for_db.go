package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/PouchSim_Go/internal/config"
)

const (
	waitForDBRetries  = 30
	waitForDBInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the snapshot database to accept connections"
}

func (c *WaitForDBCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintHeader("Waiting for database...")

	for i := 0; i < waitForDBRetries; i++ {
		if err = ping(cfg.GetDBConnString()); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		PrintInfo("Database not ready (%d/%d): %v", i+1, waitForDBRetries, err)
		time.Sleep(waitForDBInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitForDBRetries, err)
}

func ping(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), waitForDBInterval)
	defer cancel()
	return db.PingContext(ctx)
}
