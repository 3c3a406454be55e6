package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/apiarygames/hivecore/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rollback after commit is expected noise, everything else is not
		if !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
