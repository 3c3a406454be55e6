package draw

import (
	"context"
	"fmt"
	"time"

	"github.com/apiarygames/hivecore/internal/catalog"
	"github.com/apiarygames/hivecore/internal/crafting"
	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/metrics"
	"github.com/apiarygames/hivecore/internal/random"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service is the reward drafter: one cooldown-gated random part award per
// user per window. The cooldown check, stock increment, audit log and
// timestamp update commit as one unit; the follow-up assembly attempt is
// best-effort.
type Service interface {
	Draw(ctx context.Context, userID int64) (*domain.DrawResult, error)
}

type service struct {
	repo        repository.Draw
	catalogSvc  catalog.Service
	craftingSvc crafting.Service
	cooldown    time.Duration
	rng         random.Source // Injectable for testing
	now         func() time.Time
}

// NewService creates a new draw service
func NewService(repo repository.Draw, catalogSvc catalog.Service, craftingSvc crafting.Service, cooldown time.Duration) Service {
	return &service{
		repo:        repo,
		catalogSvc:  catalogSvc,
		craftingSvc: craftingSvc,
		cooldown:    cooldown,
		rng:         random.Int,
		now:         time.Now,
	}
}

// Draw performs one reward draw for the user.
func (s *service) Draw(ctx context.Context, userID int64) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	// Roll everything up front; the transaction below only has to apply
	// the outcome while holding the user row lock.
	templates, err := s.catalogSvc.Templates(ctx)
	if err != nil {
		return nil, err
	}
	// Uniform over templates, not over rarity tiers: the seeded tier
	// composition of the catalog is the drop-weight mechanism.
	idx, err := s.rng(0, len(templates)-1)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRandomFailed, err)
	}
	template := templates[idx]

	kindIdx, err := s.rng(0, len(domain.PartKinds)-1)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRandomFailed, err)
	}
	kind := domain.PartKinds[kindIdx]

	quantity, err := s.rollQuantity()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRandomFailed, err)
	}

	now := s.now().UTC()

	tx, err := s.repo.BeginDrawTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	lastDraw, err := tx.LastDrawForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lastDraw != nil {
		if elapsed := now.Sub(*lastDraw); elapsed < s.cooldown {
			return nil, domain.ErrCooldownActive{Remaining: s.cooldown - elapsed}
		}
	}

	if err := tx.AddParts(ctx, userID, template.ID, kind, template.Rarity, quantity); err != nil {
		return nil, err
	}
	if err := tx.AppendDrawLog(ctx, domain.DrawLogEntry{
		UserID:     userID,
		TemplateID: template.ID,
		Kind:       kind,
		Rarity:     template.Rarity,
		Amount:     quantity,
		At:         now,
	}); err != nil {
		return nil, err
	}
	if err := tx.SetLastDraw(ctx, userID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.DrawsTotal.WithLabelValues(string(template.Rarity)).Inc()
	metrics.PartsAwarded.WithLabelValues(string(kind)).Add(float64(quantity))

	result := &domain.DrawResult{
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Rarity:       template.Rarity,
		Kind:         kind,
		Quantity:     quantity,
	}

	// Best-effort: an incomplete set is the normal case, not an error.
	if creatureID, err := s.craftingSvc.TryAssemble(ctx, userID, template.ID, template.Rarity); err == nil {
		result.AssembledID = &creatureID
	}

	log.Info(LogMsgDrawCompleted,
		"userID", userID, "templateID", template.ID, "rarity", template.Rarity,
		"kind", kind, "quantity", quantity, "assembled", result.AssembledID != nil)
	return result, nil
}

// rollQuantity draws from the fixed categorical law: 45% uniform {1,2,3},
// 35% uniform {4,5,6}, 15% uniform {7,8,9}, 5% exactly 10.
func (s *service) rollQuantity() (int, error) {
	r, err := s.rng(1, 100)
	if err != nil {
		return 0, err
	}
	switch {
	case r <= 45:
		return s.rng(1, 3)
	case r <= 80:
		return s.rng(4, 6)
	case r <= 95:
		return s.rng(7, 9)
	default:
		return 10, nil
	}
}
