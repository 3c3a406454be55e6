package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// SquadRepository implements the squad repository for PostgreSQL
type SquadRepository struct {
	db *pgxpool.Pool
}

// NewSquadRepository creates a new SquadRepository
func NewSquadRepository(db *pgxpool.Pool) *SquadRepository {
	return &SquadRepository{db: db}
}

// GetSquad returns the user's six slots; a user with no squad row gets six
// empty slots.
func (r *SquadRepository) GetSquad(ctx context.Context, userID int64) (*domain.Squad, error) {
	squad := &domain.Squad{UserID: userID}
	err := r.db.QueryRow(ctx, SQLGetSquad, userID).Scan(
		&squad.Slots[0], &squad.Slots[1], &squad.Slots[2],
		&squad.Slots[3], &squad.Slots[4], &squad.Slots[5],
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return squad, nil
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}
	return squad, nil
}

// SquadTx implements repository.SquadTx
type SquadTx struct {
	tx pgx.Tx
}

// BeginSquadTx starts the atomic unit for a slot assignment.
func (r *SquadRepository) BeginSquadTx(ctx context.Context) (repository.SquadTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	return &SquadTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *SquadTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *SquadTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CreatureOwner returns the creature's current owner.
func (t *SquadTx) CreatureOwner(ctx context.Context, creatureID int64) (int64, error) {
	var ownerID int64
	err := t.tx.QueryRow(ctx, SQLCreatureOwner, creatureID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrCreatureNotFound
		}
		return 0, fmt.Errorf("failed to get creature owner: %w", err)
	}
	return ownerID, nil
}

// SetSlot upserts one slot column. The slot index is validated by the
// service before it reaches the statement template.
func (t *SquadTx) SetSlot(ctx context.Context, userID int64, slot int, creatureID int64) error {
	if slot < 1 || slot > domain.SquadSize {
		return domain.ErrInvalidSlot
	}
	query := fmt.Sprintf(SQLSetSlotFmt, slot, slot, slot)
	if _, err := t.tx.Exec(ctx, query, userID, creatureID); err != nil {
		return fmt.Errorf("failed to set squad slot: %w", err)
	}
	return nil
}
