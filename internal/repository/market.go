package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Market owns listing lifecycle and ownership transfer.
type Market interface {
	BeginMarketTx(ctx context.Context) (MarketTx, error)
	// ActiveListings returns open listings oldest first.
	ActiveListings(ctx context.Context) ([]domain.Listing, error)
}

// MarketTx covers listing creation, cancellation and settlement. Purchase
// settlement chains ListingForUpdate, DebitCoins, CreditCoins,
// TransferCreature and CloseListing in one unit.
type MarketTx interface {
	Tx
	CreatureForUpdate(ctx context.Context, creatureID int64) (*domain.Creature, error)
	HasActiveListing(ctx context.Context, creatureID int64) (bool, error)
	InsertListing(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error)
	// ListingForUpdate locks the listing row, or returns
	// domain.ErrListingGone when it no longer exists.
	ListingForUpdate(ctx context.Context, listingID int64) (*domain.Listing, error)
	DebitCoins(ctx context.Context, userID int64, amount int64) error
	CreditCoins(ctx context.Context, userID int64, amount int64) error
	TransferCreature(ctx context.Context, creatureID, newOwnerID int64) error
	CloseListing(ctx context.Context, listingID int64) error
}
