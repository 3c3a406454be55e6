package crafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarygames/hivecore/internal/catalog"
	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/metrics"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service assembles creatures from parts. An attempt consumes exactly one
// of each part kind at a fixed (template, rarity) and mints one creature;
// the four decrements and the insert commit together or not at all.
type Service interface {
	TryAssemble(ctx context.Context, userID, templateID int64, rarity domain.Rarity) (int64, error)
	// AutoAssembleBestRarity tries the user's stocked rarities rarest
	// first and stops at the first complete set.
	AutoAssembleBestRarity(ctx context.Context, userID, templateID int64) (int64, domain.Rarity, error)
	GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error)
	CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error)
}

type service struct {
	repo       repository.Crafting
	catalogSvc catalog.Service
}

// NewService creates a new crafting service
func NewService(repo repository.Crafting, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc}
}

// TryAssemble runs a single assembly attempt.
func (s *service) TryAssemble(ctx context.Context, userID, templateID int64, rarity domain.Rarity) (int64, error) {
	log := logger.FromContext(ctx)

	if !domain.IsValidRarity(rarity) {
		return 0, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, rarity)
	}

	template, err := s.catalogSvc.GetTemplate(ctx, templateID)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.BeginAssemblyTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Each conditional decrement doubles as the stock check; the first
	// short kind aborts and the rollback restores the others.
	for _, kind := range domain.PartKinds {
		if err := tx.ConsumePart(ctx, userID, templateID, kind, rarity); err != nil {
			return 0, err
		}
	}

	creatureID, err := tx.InsertCreature(ctx, userID, templateID, rarity, template.Role)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.CreaturesAssembled.WithLabelValues(string(rarity)).Inc()
	log.Info(LogMsgCreatureAssembled, "userID", userID, "templateID", templateID, "rarity", rarity, "creatureID", creatureID)
	return creatureID, nil
}

// AutoAssembleBestRarity enumerates stocked rarities rarest first and
// returns the first successful assembly.
func (s *service) AutoAssembleBestRarity(ctx context.Context, userID, templateID int64) (int64, domain.Rarity, error) {
	rarities, err := s.repo.StockedRarities(ctx, userID, templateID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to list stocked rarities: %w", err)
	}
	if len(rarities) == 0 {
		return 0, "", domain.ErrNotEnoughParts
	}

	for _, rarity := range catalog.RarestFirst(rarities) {
		creatureID, err := s.TryAssemble(ctx, userID, templateID, rarity)
		if err == nil {
			return creatureID, rarity, nil
		}
		if !errors.Is(err, domain.ErrNotEnoughParts) {
			return 0, "", err
		}
	}
	return 0, "", domain.ErrNotEnoughParts
}

func (s *service) GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	return s.repo.GetCreature(ctx, creatureID)
}

func (s *service) CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error) {
	return s.repo.CreaturesByOwner(ctx, ownerID)
}
