package market

import (
	"context"
	"fmt"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/metrics"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service is the player-to-player creature market. Settlement moves the
// coins and the ownership in one transaction; exactly one buyer wins a
// listing, everyone else sees domain.ErrListingGone.
type Service interface {
	List(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error)
	Cancel(ctx context.Context, sellerID, listingID int64) error
	Buy(ctx context.Context, buyerID, listingID int64) (*domain.Listing, error)
	ActiveListings(ctx context.Context) ([]domain.Listing, error)
}

type service struct {
	repo    repository.Market
	economy repository.Economy
}

// NewService creates a new market service
func NewService(repo repository.Market, economy repository.Economy) Service {
	return &service{repo: repo, economy: economy}
}

// List puts an owned creature up for sale.
func (s *service) List(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)

	if price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	tx, err := s.repo.BeginMarketTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The creature lock serialises competing list calls; the unique
	// index on listings.creature_id backstops the check below.
	creature, err := tx.CreatureForUpdate(ctx, creatureID)
	if err != nil {
		return nil, err
	}
	if creature.OwnerID != sellerID {
		return nil, domain.ErrNotOwner
	}

	listed, err := tx.HasActiveListing(ctx, creatureID)
	if err != nil {
		return nil, err
	}
	if listed {
		return nil, domain.ErrAlreadyListed
	}

	listing, err := tx.InsertListing(ctx, sellerID, creatureID, price)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ListingsCreated.Inc()
	log.Info(LogMsgListingCreated, "sellerID", sellerID, "creatureID", creatureID, "listingID", listing.ID, "price", price)
	return listing, nil
}

// Cancel removes the seller's own active listing.
func (s *service) Cancel(ctx context.Context, sellerID, listingID int64) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginMarketTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.ListingForUpdate(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return domain.ErrNotOwner
	}

	if err := tx.CloseListing(ctx, listingID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgListingCancelled, "sellerID", sellerID, "listingID", listingID)
	return nil
}

// Buy settles a purchase: debit buyer, credit seller, transfer ownership,
// close the listing. All four commit together or none do.
func (s *service) Buy(ctx context.Context, buyerID, listingID int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)

	// A first-time buyer gets a zero-balance row; the debit below then
	// fails with insufficient funds rather than a missing-user surprise.
	if err := s.economy.EnsureUser(ctx, buyerID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginMarketTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The row lock is the winner-takes-all gate: the losing buyer blocks
	// here, then finds the row deleted.
	listing, err := tx.ListingForUpdate(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := tx.DebitCoins(ctx, buyerID, listing.Price); err != nil {
		return nil, err
	}
	if err := tx.CreditCoins(ctx, listing.SellerID, listing.Price); err != nil {
		return nil, err
	}
	if err := tx.TransferCreature(ctx, listing.CreatureID, buyerID); err != nil {
		return nil, err
	}
	if err := tx.CloseListing(ctx, listingID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.TradesSettled.Inc()
	metrics.CoinsTraded.Add(float64(listing.Price))
	log.Info(LogMsgTradeSettled,
		"buyerID", buyerID, "sellerID", listing.SellerID,
		"creatureID", listing.CreatureID, "listingID", listingID, "price", listing.Price)
	return listing, nil
}

// ActiveListings returns open listings oldest first.
func (s *service) ActiveListings(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.ActiveListings(ctx)
}
