package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Economy owns coin balances. Credit and Debit are single-statement
// atomics; the part-sale path runs inside a PartSaleTx because it touches
// stock and coins together.
type Economy interface {
	EnsureUser(ctx context.Context, userID int64) error
	GetBalance(ctx context.Context, userID int64) (int64, error)
	Credit(ctx context.Context, userID int64, amount int64) error
	// Debit subtracts only when the balance covers amount, otherwise
	// domain.ErrInsufficientFunds with no state change.
	Debit(ctx context.Context, userID int64, amount int64) error
	BeginPartSaleTx(ctx context.Context) (PartSaleTx, error)
}

// PartSaleTx is the atomic unit for selling parts: stock decrement plus
// coin credit commit together or not at all.
type PartSaleTx interface {
	Tx
	// RichestStockForUpdate locks and returns the stock row with the
	// highest amount for (user, template, kind), or
	// domain.ErrInsufficientStock when the user holds none.
	RichestStockForUpdate(ctx context.Context, userID, templateID int64, kind domain.PartKind) (*domain.PartStock, error)
	DeductStock(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	CreditCoins(ctx context.Context, userID int64, amount int64) error
}
