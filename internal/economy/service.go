package economy

import (
	"context"
	"fmt"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/metrics"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service is the coin ledger. Balances never go negative: debits are
// conditional at the store and fail with domain.ErrInsufficientFunds.
type Service interface {
	Credit(ctx context.Context, userID int64, amount int64) error
	Debit(ctx context.Context, userID int64, amount int64) error
	Balance(ctx context.Context, userID int64) (int64, error)
	// SellParts consumes qty parts of the given kind for the template and
	// credits coins at the sold rarity's base value. Returns the coins
	// gained and the rarity the stock was taken from.
	SellParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, qty int) (int64, domain.Rarity, error)
}

type service struct {
	repo repository.Economy
}

// NewService creates a new economy service
func NewService(repo repository.Economy) Service {
	return &service{repo: repo}
}

func (s *service) Credit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidInput)
	}
	if err := s.repo.EnsureUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.Credit(ctx, userID, amount)
}

func (s *service) Debit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidInput)
	}
	return s.repo.Debit(ctx, userID, amount)
}

func (s *service) Balance(ctx context.Context, userID int64) (int64, error) {
	return s.repo.GetBalance(ctx, userID)
}

// SellParts sells from the stock row with the highest current amount for
// (template, kind). The caller does not choose the rarity tier; the sold
// tier is returned so it is at least visible.
func (s *service) SellParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, qty int) (int64, domain.Rarity, error) {
	log := logger.FromContext(ctx)

	if !domain.IsValidPartKind(kind) {
		return 0, "", fmt.Errorf("%w: unknown part kind %q", domain.ErrInvalidInput, kind)
	}
	if qty <= 0 {
		return 0, "", fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	if err := s.repo.EnsureUser(ctx, userID); err != nil {
		return 0, "", err
	}

	tx, err := s.repo.BeginPartSaleTx(ctx)
	if err != nil {
		return 0, "", fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	stock, err := tx.RichestStockForUpdate(ctx, userID, templateID, kind)
	if err != nil {
		return 0, "", err
	}
	if stock.Amount < qty {
		return 0, "", domain.ErrInsufficientStock
	}

	if err := tx.DeductStock(ctx, userID, templateID, kind, stock.Rarity, qty); err != nil {
		return 0, "", err
	}

	total := domain.PartBaseValue[stock.Rarity] * int64(qty)
	if err := tx.CreditCoins(ctx, userID, total); err != nil {
		return 0, "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, "", fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.PartsSold.WithLabelValues(string(kind)).Add(float64(qty))
	log.Info(LogMsgPartsSold, "userID", userID, "templateID", templateID, "kind", kind, "rarity", stock.Rarity, "qty", qty, "coins", total)
	return total, stock.Rarity, nil
}
