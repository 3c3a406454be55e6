package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Crafting backs the assembly engine. The four part decrements and the
// creature insert share one AssemblyTx.
type Crafting interface {
	BeginAssemblyTx(ctx context.Context) (AssemblyTx, error)
	// StockedRarities returns the rarities for which the user holds any
	// positive stock of the template.
	StockedRarities(ctx context.Context, userID, templateID int64) ([]domain.Rarity, error)
	GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error)
	CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error)
}

// AssemblyTx rolls the whole attempt back if any part kind is short.
type AssemblyTx interface {
	Tx
	// ConsumePart decrements one unit, failing with
	// domain.ErrNotEnoughParts when the row is missing or empty.
	ConsumePart(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity) error
	InsertCreature(ctx context.Context, ownerID, templateID int64, rarity domain.Rarity, role string) (int64, error)
}
