package bootstrap

import (
	"context"
	"log/slog"

	"github.com/apiarygames/hivecore/internal/database"
	"github.com/apiarygames/hivecore/internal/server"
)

// GracefulShutdown stops the HTTP server, waits for in-flight requests
// within the context deadline, then closes the database pool.
func GracefulShutdown(ctx context.Context, srv *server.Server, dbPool database.Pool) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	dbPool.Close()

	slog.Info(LogMsgServerStopped)
}
