package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PouchSim_Go/internal/config"
)

type CreateDBCommand struct{}

func (c *CreateDBCommand) Name() string {
	return "create-db"
}

func (c *CreateDBCommand) Description() string {
	return "Create the snapshot database if it does not exist"
}

func (c *CreateDBCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, maintenanceConnString(cfg))
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	PrintSuccess("Database %s created, run 'devtool migrate' next", cfg.DBName)
	return nil
}

// maintenanceConnString points at the server's default postgres database
func maintenanceConnString(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     cfg.DBHost + ":" + cfg.DBPort,
		Path:     "/postgres",
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
