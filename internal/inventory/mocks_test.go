package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Increment(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	args := m.Called(ctx, userID, templateID, kind, rarity, qty)
	return args.Error(0)
}

func (m *MockRepository) DecrementIfAvailable(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	args := m.Called(ctx, userID, templateID, kind, rarity, qty)
	return args.Error(0)
}

func (m *MockRepository) Snapshot(ctx context.Context, userID int64, templateID *int64) ([]domain.PartStock, error) {
	args := m.Called(ctx, userID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartStock), args.Error(1)
}

// MockEconomyRepository implements repository.Economy for testing
type MockEconomyRepository struct {
	mock.Mock
}

func (m *MockEconomyRepository) EnsureUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockEconomyRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyRepository) Credit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockEconomyRepository) Debit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockEconomyRepository) BeginPartSaleTx(ctx context.Context) (repository.PartSaleTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PartSaleTx), args.Error(1)
}

var (
	_ repository.Inventory = (*MockRepository)(nil)
	_ repository.Economy   = (*MockEconomyRepository)(nil)
)
