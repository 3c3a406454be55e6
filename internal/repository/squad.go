package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Squad owns the per-user slot assignments.
type Squad interface {
	GetSquad(ctx context.Context, userID int64) (*domain.Squad, error)
	BeginSquadTx(ctx context.Context) (SquadTx, error)
}

// SquadTx keeps the ownership check and the slot write in one unit so a
// concurrent sale cannot slip between them.
type SquadTx interface {
	Tx
	CreatureOwner(ctx context.Context, creatureID int64) (int64, error)
	SetSlot(ctx context.Context, userID int64, slot int, creatureID int64) error
}
