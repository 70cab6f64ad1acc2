package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/osse101/PouchSim_Go/internal/command"
	"github.com/osse101/PouchSim_Go/internal/config"
	"github.com/osse101/PouchSim_Go/internal/item"
)

type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string {
	return "check-catalog"
}

func (c *CheckCatalogCommand) Description() string {
	return "Validate the item catalog and replay every bundled scenario"
}

// Run takes optional [items.json] [scenario dir] arguments
func (c *CheckCatalogCommand) Run(args []string) error {
	itemsPath := config.DefaultItemsConfigPath
	scenarioDir := config.DefaultScenarioDir
	if len(args) > 0 {
		itemsPath = args[0]
	}
	if len(args) > 1 {
		scenarioDir = args[1]
	}

	PrintHeader("Checking item catalog")
	ctx := context.Background()

	registry, err := item.NewLoader().LoadRegistry(ctx, itemsPath)
	if err != nil {
		return err
	}
	PrintSuccess("%s: %d items", itemsPath, registry.Len())

	paths, err := filepath.Glob(filepath.Join(scenarioDir, "*.json"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		PrintWarning("No scenarios in %s", scenarioDir)
		return nil
	}

	exec := command.NewExecutor(registry)
	failed := 0
	for _, path := range paths {
		sc, err := command.LoadScenario(path)
		if err == nil {
			_, _, err = sc.Run(ctx, exec)
		}
		if err != nil {
			PrintError("%s: %v", path, err)
			failed++
			continue
		}
		PrintSuccess("%s: %d commands", path, len(sc.Commands))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(paths))
	}
	return nil
}
