package crafting

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Crafting for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginAssemblyTx(ctx context.Context) (repository.AssemblyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AssemblyTx), args.Error(1)
}

func (m *MockRepository) StockedRarities(ctx context.Context, userID, templateID int64) ([]domain.Rarity, error) {
	args := m.Called(ctx, userID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rarity), args.Error(1)
}

func (m *MockRepository) GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	args := m.Called(ctx, creatureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creature), args.Error(1)
}

func (m *MockRepository) CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Creature), args.Error(1)
}

// MockAssemblyTx implements repository.AssemblyTx for testing
type MockAssemblyTx struct {
	mock.Mock
}

func (m *MockAssemblyTx) ConsumePart(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity) error {
	args := m.Called(ctx, userID, templateID, kind, rarity)
	return args.Error(0)
}

func (m *MockAssemblyTx) InsertCreature(ctx context.Context, ownerID, templateID int64, rarity domain.Rarity, role string) (int64, error) {
	args := m.Called(ctx, ownerID, templateID, rarity, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssemblyTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssemblyTx) Rollback(ctx context.Context) error {
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

var _ repository.Crafting = (*MockRepository)(nil)
var _ repository.AssemblyTx = (*MockAssemblyTx)(nil)
