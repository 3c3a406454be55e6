package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/domain"
)

// CatalogRepository reads the immutable template catalog from PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListTemplates returns every catalog template in id order.
func (r *CatalogRepository) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	rows, err := r.db.Query(ctx, SQLListTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Rarity, &t.Role, &t.BaseValue); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return templates, nil
}

// GetTemplate returns one template by id.
func (r *CatalogRepository) GetTemplate(ctx context.Context, templateID int64) (*domain.Template, error) {
	var t domain.Template
	err := r.db.QueryRow(ctx, SQLGetTemplate, templateID).
		Scan(&t.ID, &t.Name, &t.Rarity, &t.Role, &t.BaseValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}
