package bootstrap

import (
	"context"

	"github.com/osse101/PouchSim_Go/internal/logger"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server  stoppable
	Events  *EventSystem
	Storage *Storage
}

// GracefulShutdown ends event streams, stops the server and then releases
// the database pool. Streams go first since the server waits for open
// connections. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Events != nil && components.Events.Hub != nil {
		logger.Info(LogMsgClosingEventStreams)
		components.Events.Hub.Stop()
	}

	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Storage != nil && components.Storage.Pool != nil {
		logger.Info(LogMsgClosingDatabase)
		components.Storage.Pool.Close()
	}

	logger.Info(LogMsgServerStopped)
}
