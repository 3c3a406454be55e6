package squad

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MockRepository implements repository.Squad for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSquad(ctx context.Context, userID int64) (*domain.Squad, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Squad), args.Error(1)
}

func (m *MockRepository) BeginSquadTx(ctx context.Context) (repository.SquadTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SquadTx), args.Error(1)
}

// MockSquadTx implements repository.SquadTx for testing
type MockSquadTx struct {
	mock.Mock
}

func (m *MockSquadTx) CreatureOwner(ctx context.Context, creatureID int64) (int64, error) {
	args := m.Called(ctx, creatureID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSquadTx) SetSlot(ctx context.Context, userID int64, slot int, creatureID int64) error {
	args := m.Called(ctx, userID, slot, creatureID)
	return args.Error(0)
}

func (m *MockSquadTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSquadTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ repository.Squad   = (*MockRepository)(nil)
	_ repository.SquadTx = (*MockSquadTx)(nil)
)
