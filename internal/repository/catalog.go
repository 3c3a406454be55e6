package repository

import (
	"context"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Catalog reads the immutable template catalog.
type Catalog interface {
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, templateID int64) (*domain.Template, error)
}
