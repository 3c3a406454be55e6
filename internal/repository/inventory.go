package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Inventory owns part-stock amounts. Both mutations are single-statement
// atomics (upsert / conditional update), never read-then-write.
type Inventory interface {
	// Increment performs an atomic add-or-create on the stock row.
	Increment(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	// DecrementIfAvailable decrements only when the current amount covers
	// qty, otherwise domain.ErrInsufficientStock with no state change.
	DecrementIfAvailable(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	// Snapshot lists stock rows with a positive amount, optionally
	// filtered to one template.
	Snapshot(ctx context.Context, userID int64, templateID *int64) ([]domain.PartStock, error)
}
