package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// DrawRepository implements the draw repository for PostgreSQL
type DrawRepository struct {
	db *pgxpool.Pool
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(db *pgxpool.Pool) *DrawRepository {
	return &DrawRepository{db: db}
}

// DrawTx implements repository.DrawTx
type DrawTx struct {
	tx pgx.Tx
}

// BeginDrawTx starts the atomic unit for a reward draw.
func (r *DrawRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	return &DrawTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *DrawTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *DrawTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// LastDrawForUpdate upserts the user row and returns last_draw_at with the
// row locked. Holding the lock until commit is what makes the cooldown
// check-then-act safe across concurrent draws.
func (t *DrawTx) LastDrawForUpdate(ctx context.Context, userID int64) (*time.Time, error) {
	if _, err := t.tx.Exec(ctx, SQLEnsureUser, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	var lastDraw *time.Time
	err := t.tx.QueryRow(ctx, SQLLastDrawForUpdate, userID).Scan(&lastDraw)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}
	return lastDraw, nil
}

// AddParts upserts the awarded stock inside the draw transaction.
func (t *DrawTx) AddParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	_, err := t.tx.Exec(ctx, SQLUpsertStock, userID, templateID, string(kind), string(rarity), qty)
	if err != nil {
		return fmt.Errorf("failed to add parts: %w", err)
	}
	return nil
}

// AppendDrawLog writes the audit row for the draw.
func (t *DrawTx) AppendDrawLog(ctx context.Context, entry domain.DrawLogEntry) error {
	_, err := t.tx.Exec(ctx, SQLInsertDrawLog,
		entry.UserID, entry.TemplateID, string(entry.Kind), string(entry.Rarity), entry.Amount, entry.At)
	if err != nil {
		return fmt.Errorf("failed to append draw log: %w", err)
	}
	return nil
}

// SetLastDraw stamps the cooldown inside the draw transaction.
func (t *DrawTx) SetLastDraw(ctx context.Context, userID int64, at time.Time) error {
	_, err := t.tx.Exec(ctx, SQLSetLastDraw, userID, at)
	if err != nil {
		return fmt.Errorf("failed to set last draw: %w", err)
	}
	return nil
}
