package repository

import (
	"context"
	"time"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Draw backs the reward drafter. The whole draw - cooldown check, stock
// increment, audit log, timestamp update - runs inside one DrawTx.
type Draw interface {
	BeginDrawTx(ctx context.Context) (DrawTx, error)
}

// DrawTx holds the user row locked from the cooldown read until commit,
// so two concurrent draws inside the window cannot both pass the check.
type DrawTx interface {
	Tx
	// LastDrawForUpdate creates the user row if missing and returns the
	// last-draw timestamp with the row locked.
	LastDrawForUpdate(ctx context.Context, userID int64) (*time.Time, error)
	AddParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	AppendDrawLog(ctx context.Context, entry domain.DrawLogEntry) error
	SetLastDraw(ctx context.Context, userID int64, at time.Time) error
}
