package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&CreateDBCommand{},
		&WaitForDBCommand{},
		&CheckCatalogCommand{},
		&HealthCheckCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		if !errors.Is(err, errNoCommand) {
			PrintError("%v", err)
		}
		if errors.Is(err, errNoCommand) || errors.Is(err, errUnknownCommand) {
			registry.PrintHelp(os.Stderr)
		}
		os.Exit(1)
	}
}
