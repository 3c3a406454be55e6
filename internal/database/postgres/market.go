package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// MarketRepository implements the market repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// MarketTx implements repository.MarketTx
type MarketTx struct {
	tx pgx.Tx
}

// BeginMarketTx starts the atomic unit for listing and settlement work.
func (r *MarketRepository) BeginMarketTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	return &MarketTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *MarketTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *MarketTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CreatureForUpdate locks the creature row for the listing flow.
func (t *MarketTx) CreatureForUpdate(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	var c domain.Creature
	err := t.tx.QueryRow(ctx, SQLCreatureForUpdate, creatureID).
		Scan(&c.ID, &c.OwnerID, &c.TemplateID, &c.Rarity, &c.Role, &c.Level, &c.Exp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreatureNotFound
		}
		return nil, fmt.Errorf("failed to lock creature: %w", err)
	}
	return &c, nil
}

// HasActiveListing reports whether the creature is already on the market.
func (t *MarketTx) HasActiveListing(ctx context.Context, creatureID int64) (bool, error) {
	var exists bool
	if err := t.tx.QueryRow(ctx, SQLHasActiveListing, creatureID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check listing: %w", err)
	}
	return exists, nil
}

// InsertListing creates the active listing.
func (t *MarketTx) InsertListing(ctx context.Context, sellerID, creatureID int64, price int64) (*domain.Listing, error) {
	listing := domain.Listing{
		SellerID:   sellerID,
		CreatureID: creatureID,
		Price:      price,
	}
	err := t.tx.QueryRow(ctx, SQLInsertListing, sellerID, creatureID, price).
		Scan(&listing.ID, &listing.CreatedAt)
	if err != nil {
		// The unique index on creature_id backstops the in-tx check when
		// two list calls race.
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyListed
		}
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}
	return &listing, nil
}

// ListingForUpdate locks the listing row; a missing row means some other
// buyer settled or the seller cancelled first.
func (t *MarketTx) ListingForUpdate(ctx context.Context, listingID int64) (*domain.Listing, error) {
	var l domain.Listing
	err := t.tx.QueryRow(ctx, SQLListingForUpdate, listingID).
		Scan(&l.ID, &l.SellerID, &l.CreatureID, &l.Price, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingGone
		}
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}
	return &l, nil
}

// DebitCoins conditionally subtracts the purchase price from the buyer.
func (t *MarketTx) DebitCoins(ctx context.Context, userID int64, amount int64) error {
	tag, err := t.tx.Exec(ctx, SQLDebitCoins, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// CreditCoins adds the proceeds to the seller.
func (t *MarketTx) CreditCoins(ctx context.Context, userID int64, amount int64) error {
	tag, err := t.tx.Exec(ctx, SQLCreditCoins, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// TransferCreature moves ownership to the buyer.
func (t *MarketTx) TransferCreature(ctx context.Context, creatureID, newOwnerID int64) error {
	tag, err := t.tx.Exec(ctx, SQLTransferCreature, creatureID, newOwnerID)
	if err != nil {
		return fmt.Errorf("failed to transfer creature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCreatureNotFound
	}
	return nil
}

// CloseListing removes the settled or cancelled listing.
func (t *MarketTx) CloseListing(ctx context.Context, listingID int64) error {
	tag, err := t.tx.Exec(ctx, SQLCloseListing, listingID)
	if err != nil {
		return fmt.Errorf("failed to close listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingGone
	}
	return nil
}

// ActiveListings returns open listings oldest first.
func (r *MarketRepository) ActiveListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, SQLActiveListings)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.SellerID, &l.CreatureID, &l.Price, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}
	return listings, nil
}
