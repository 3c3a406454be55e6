package squad

import (
	"context"
	"fmt"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service manages the per-user six-slot squad. Overwriting an occupied
// slot is allowed, and so is placing one creature in several slots; only
// ownership is enforced.
type Service interface {
	SetSlot(ctx context.Context, userID int64, slot int, creatureID int64) error
	GetSquad(ctx context.Context, userID int64) (*domain.Squad, error)
}

type service struct {
	repo repository.Squad
}

// NewService creates a new squad service
func NewService(repo repository.Squad) Service {
	return &service{repo: repo}
}

func (s *service) SetSlot(ctx context.Context, userID int64, slot int, creatureID int64) error {
	log := logger.FromContext(ctx)

	if slot < 1 || slot > domain.SquadSize {
		return fmt.Errorf("%w: slot %d out of range", domain.ErrInvalidSlot, slot)
	}

	tx, err := s.repo.BeginSquadTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	ownerID, err := tx.CreatureOwner(ctx, creatureID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return domain.ErrNotOwner
	}

	if err := tx.SetSlot(ctx, userID, slot, creatureID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgSlotAssigned, "userID", userID, "slot", slot, "creatureID", creatureID)
	return nil
}

func (s *service) GetSquad(ctx context.Context, userID int64) (*domain.Squad, error) {
	return s.repo.GetSquad(ctx, userID)
}
