package draw

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Draw for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DrawTx), args.Error(1)
}

// MockDrawTx implements repository.DrawTx for testing
type MockDrawTx struct {
	mock.Mock
}

func (m *MockDrawTx) LastDrawForUpdate(ctx context.Context, userID int64) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockDrawTx) AddParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	args := m.Called(ctx, userID, templateID, kind, rarity, qty)
	return args.Error(0)
}

func (m *MockDrawTx) AppendDrawLog(ctx context.Context, entry domain.DrawLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDrawTx) SetLastDraw(ctx context.Context, userID int64, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockDrawTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDrawTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogService implements catalog.Service for testing
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Templates(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Template), args.Error(1)
}

func (m *MockCatalogService) GetTemplate(ctx context.Context, templateID int64) (*domain.Template, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

// MockCraftingService implements crafting.Service for testing
type MockCraftingService struct {
	mock.Mock
}

func (m *MockCraftingService) TryAssemble(ctx context.Context, userID, templateID int64, rarity domain.Rarity) (int64, error) {
	args := m.Called(ctx, userID, templateID, rarity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCraftingService) AutoAssembleBestRarity(ctx context.Context, userID, templateID int64) (int64, domain.Rarity, error) {
	args := m.Called(ctx, userID, templateID)
	return args.Get(0).(int64), args.Get(1).(domain.Rarity), args.Error(2)
}

func (m *MockCraftingService) GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	args := m.Called(ctx, creatureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creature), args.Error(1)
}

func (m *MockCraftingService) CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Creature), args.Error(1)
}

// scriptedRolls returns a random.Source that replays the given values in
// order. The test fails the draw with a panic if it rolls more often than
// scripted.
func scriptedRolls(values ...int) func(min, max int) (int, error) {
	i := 0
	return func(min, max int) (int, error) {
		if i >= len(values) {
			panic("scripted rolls exhausted")
		}
		v := values[i]
		i++
		return v, nil
	}
}
