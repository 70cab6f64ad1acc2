package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/PouchSim_Go/internal/item"
	"github.com/osse101/PouchSim_Go/internal/logger"
)

// LoadCatalog reads and validates the item catalog at path
func LoadCatalog(ctx context.Context, path string) (*item.Registry, error) {
	logger.Info(LogMsgLoadingCatalog, "path", path)

	registry, err := item.NewLoader().LoadRegistry(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	logger.Info(LogMsgCatalogLoaded, "items", registry.Len())
	return registry, nil
}
