package market

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Market for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginMarketTx(ctx context.Context) (repository.MarketTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MarketTx), args.Error(1)
}

func (m *MockRepository) ActiveListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

// MockMarketTx implements repository.MarketTx for testing
type MockMarketTx struct {
	mock.Mock
}

func (m *MockMarketTx) CreatureForUpdate(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	args := m.Called(ctx, creatureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creature), args.Error(1)
}

func (m *MockMarketTx) HasActiveListing(ctx context.Context, creatureID int64) (bool, error) {
	args := m.Called(ctx, creatureID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarketTx) InsertListing(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, creatureID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketTx) ListingForUpdate(ctx context.Context, listingID int64) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketTx) DebitCoins(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockMarketTx) CreditCoins(ctx context.Context, userID int64, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockMarketTx) TransferCreature(ctx context.Context, creatureID, newOwnerID int64) error {
	args := m.Called(ctx, creatureID, newOwnerID)
	return args.Error(0)
}

func (m *MockMarketTx) CloseListing(ctx context.Context, listingID int64) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func (m *MockMarketTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
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
	_ repository.Market   = (*MockRepository)(nil)
	_ repository.MarketTx = (*MockMarketTx)(nil)
	_ repository.Economy  = (*MockEconomyRepository)(nil)
)
