package inventory

import (
	"context"
	"fmt"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service is the part-stock ledger. Mutations are delegated to the
// repository's single-statement atomics so concurrent callers can never
// observe a stale amount between check and write.
type Service interface {
	Increment(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	DecrementIfAvailable(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error
	Snapshot(ctx context.Context, userID int64, templateID *int64) ([]domain.PartStock, error)
}

type service struct {
	repo    repository.Inventory
	economy repository.Economy
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, economy repository.Economy) Service {
	return &service{repo: repo, economy: economy}
}

func (s *service) Increment(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	log := logger.FromContext(ctx)

	if err := validateKey(kind, rarity); err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	// Stock rows reference the user row, which is created lazily.
	if err := s.economy.EnsureUser(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.Increment(ctx, userID, templateID, kind, rarity, qty); err != nil {
		return err
	}

	log.Debug(LogMsgStockIncremented, "userID", userID, "templateID", templateID, "kind", kind, "rarity", rarity, "qty", qty)
	return nil
}

func (s *service) DecrementIfAvailable(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	if err := validateKey(kind, rarity); err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	return s.repo.DecrementIfAvailable(ctx, userID, templateID, kind, rarity, qty)
}

func (s *service) Snapshot(ctx context.Context, userID int64, templateID *int64) ([]domain.PartStock, error) {
	return s.repo.Snapshot(ctx, userID, templateID)
}

func validateKey(kind domain.PartKind, rarity domain.Rarity) error {
	if !domain.IsValidPartKind(kind) {
		return fmt.Errorf("%w: unknown part kind %q", domain.ErrInvalidInput, kind)
	}
	if !domain.IsValidRarity(rarity) {
		return fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, rarity)
	}
	return nil
}
