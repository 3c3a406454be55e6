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

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EnsureUser creates the user row on first interaction, idempotently.
func (r *EconomyRepository) EnsureUser(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, SQLEnsureUser, userID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// GetBalance returns the user's coin balance.
func (r *EconomyRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var coins int64
	err := r.db.QueryRow(ctx, SQLGetBalance, userID).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return coins, nil
}

// Credit atomically adds coins to the user's balance.
func (r *EconomyRepository) Credit(ctx context.Context, userID int64, amount int64) error {
	tag, err := r.db.Exec(ctx, SQLCreditCoins, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Debit atomically subtracts coins only if the balance covers the amount.
func (r *EconomyRepository) Debit(ctx context.Context, userID int64, amount int64) error {
	tag, err := r.db.Exec(ctx, SQLDebitCoins, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// PartSaleTx implements repository.PartSaleTx
type PartSaleTx struct {
	tx pgx.Tx
}

// BeginPartSaleTx starts the atomic unit for a part sale.
func (r *EconomyRepository) BeginPartSaleTx(ctx context.Context) (repository.PartSaleTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	return &PartSaleTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PartSaleTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *PartSaleTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// RichestStockForUpdate locks the best-stocked row for the part kind.
func (t *PartSaleTx) RichestStockForUpdate(ctx context.Context, userID, templateID int64, kind domain.PartKind) (*domain.PartStock, error) {
	var stock domain.PartStock
	err := t.tx.QueryRow(ctx, SQLRichestStockForUpdate, userID, templateID, string(kind)).
		Scan(&stock.UserID, &stock.TemplateID, &stock.Kind, &stock.Rarity, &stock.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to select stock row: %w", err)
	}
	return &stock, nil
}

// DeductStock conditionally decrements the locked stock row.
func (t *PartSaleTx) DeductStock(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	tag, err := t.tx.Exec(ctx, SQLDecrementStock, userID, templateID, string(kind), string(rarity), qty)
	if err != nil {
		return fmt.Errorf("failed to deduct stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// CreditCoins adds the sale proceeds inside the transaction.
func (t *PartSaleTx) CreditCoins(ctx context.Context, userID int64, amount int64) error {
	tag, err := t.tx.Exec(ctx, SQLCreditCoins, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
