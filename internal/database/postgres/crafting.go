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

// CraftingRepository implements the crafting repository for PostgreSQL
type CraftingRepository struct {
	db *pgxpool.Pool
}

// NewCraftingRepository creates a new CraftingRepository
func NewCraftingRepository(db *pgxpool.Pool) *CraftingRepository {
	return &CraftingRepository{db: db}
}

// AssemblyTx implements repository.AssemblyTx
type AssemblyTx struct {
	tx pgx.Tx
}

// BeginAssemblyTx starts the atomic unit for an assembly attempt.
func (r *CraftingRepository) BeginAssemblyTx(ctx context.Context) (repository.AssemblyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	return &AssemblyTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *AssemblyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *AssemblyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ConsumePart decrements one unit of a part kind. A zero-row update means
// the kind is short, which fails the whole attempt.
func (t *AssemblyTx) ConsumePart(ctx context.Context, userID, templateID int64, kind domain.PartKind, rarity domain.Rarity) error {
	tag, err := t.tx.Exec(ctx, SQLConsumeOnePart, userID, templateID, string(kind), string(rarity))
	if err != nil {
		return fmt.Errorf("failed to consume part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnoughParts
	}
	return nil
}

// InsertCreature mints the assembled creature at level 1.
func (t *AssemblyTx) InsertCreature(ctx context.Context, ownerID, templateID int64, rarity domain.Rarity, role string) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, SQLInsertCreature, ownerID, templateID, string(rarity), role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert creature: %w", err)
	}
	return id, nil
}

// StockedRarities returns the rarities the user holds any stock of for the
// template.
func (r *CraftingRepository) StockedRarities(ctx context.Context, userID, templateID int64) ([]domain.Rarity, error) {
	rows, err := r.db.Query(ctx, SQLStockedRarities, userID, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocked rarities: %w", err)
	}
	defer rows.Close()

	var rarities []domain.Rarity
	for rows.Next() {
		var rarity domain.Rarity
		if err := rows.Scan(&rarity); err != nil {
			return nil, fmt.Errorf("failed to scan rarity: %w", err)
		}
		rarities = append(rarities, rarity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rarities: %w", err)
	}
	return rarities, nil
}

// GetCreature retrieves one creature by id.
func (r *CraftingRepository) GetCreature(ctx context.Context, creatureID int64) (*domain.Creature, error) {
	var c domain.Creature
	err := r.db.QueryRow(ctx, SQLGetCreature, creatureID).
		Scan(&c.ID, &c.OwnerID, &c.TemplateID, &c.Rarity, &c.Role, &c.Level, &c.Exp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreatureNotFound
		}
		return nil, fmt.Errorf("failed to get creature: %w", err)
	}
	return &c, nil
}

// CreaturesByOwner lists a user's creatures, strongest first.
func (r *CraftingRepository) CreaturesByOwner(ctx context.Context, ownerID int64) ([]domain.Creature, error) {
	rows, err := r.db.Query(ctx, SQLCreaturesByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query creatures: %w", err)
	}
	defer rows.Close()

	var creatures []domain.Creature
	for rows.Next() {
		var c domain.Creature
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.TemplateID, &c.Rarity, &c.Role, &c.Level, &c.Exp); err != nil {
			return nil, fmt.Errorf("failed to scan creature: %w", err)
		}
		creatures = append(creatures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read creatures: %w", err)
	}
	return creatures, nil
}
