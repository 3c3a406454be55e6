package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Increment performs an atomic add-or-create on the stock row.
func (r *InventoryRepository) Increment(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	_, err := r.db.Exec(ctx, SQLUpsertStock, userID, templateID, string(kind), string(rarity), qty)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	return nil
}

// DecrementIfAvailable decrements only when the stored amount covers qty.
// The condition lives in the statement itself, so concurrent decrements on
// the same row cannot both pass a stale check.
func (r *InventoryRepository) DecrementIfAvailable(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	tag, err := r.db.Exec(ctx, SQLDecrementStock, userID, templateID, string(kind), string(rarity), qty)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Snapshot lists the user's positive stock rows, optionally filtered to
// one template.
func (r *InventoryRepository) Snapshot(ctx context.Context, userID int64, templateID *int64) ([]domain.PartStock, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if templateID != nil {
		rows, err = r.db.Query(ctx, SQLSnapshotStockByTemplate, userID, *templateID)
	} else {
		rows, err = r.db.Query(ctx, SQLSnapshotStock, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	defer rows.Close()

	var stocks []domain.PartStock
	for rows.Next() {
		var s domain.PartStock
		if err := rows.Scan(&s.UserID, &s.TemplateID, &s.Kind, &s.Rarity, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock rows: %w", err)
	}
	return stocks, nil
}
