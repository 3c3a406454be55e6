package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Credit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockRepository) Debit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockRepository) BeginPartSaleTx(ctx context.Context) (repository.PartSaleTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PartSaleTx), args.Error(1)
}

// MockPartSaleTx implements repository.PartSaleTx for testing
type MockPartSaleTx struct {
	mock.Mock
}

func (m *MockPartSaleTx) RichestStockForUpdate(ctx context.Context, userID, templateID int64, kind domain.PartKind) (*domain.PartStock, error) {
	args := m.Called(ctx, userID, templateID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartStock), args.Error(1)
}

func (m *MockPartSaleTx) DeductStock(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity, qty int) error {
	args := m.Called(ctx, userID, templateID, kind, rarity, qty)
	return args.Error(0)
}

func (m *MockPartSaleTx) CreditCoins(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockPartSaleTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartSaleTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mocks satisfy the interfaces
var (
	_ repository.Economy    = (*MockRepository)(nil)
	_ repository.PartSaleTx = (*MockPartSaleTx)(nil)
)
