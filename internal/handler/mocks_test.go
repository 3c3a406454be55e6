package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
)

// MockDrawService implements draw.Service for testing
type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) Draw(ctx context.Context, userID int64) (*domain.DrawResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

// MockMarketService implements market.Service for testing
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) List(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, creatureID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) Cancel(ctx context.Context, sellerID, listingID int64) error {
	args := m.Called(ctx, sellerID, listingID)
	return args.Error(0)
}

func (m *MockMarketService) Buy(ctx context.Context, buyerID, listingID int64) (*domain.Listing, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) ActiveListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

// MockEconomyService implements economy.Service for testing
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Credit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockEconomyService) Debit(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockEconomyService) Balance(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) SellParts(ctx context.Context, userID, templateID int64, kind domain.PartKind, qty int) (int64, domain.Rarity, error) {
	args := m.Called(ctx, userID, templateID, kind, qty)
	return args.Get(0).(int64), args.Get(1).(domain.Rarity), args.Error(2)
}

// MockDBPool implements database.Pool for testing
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
