package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Service reads the immutable template catalog. Templates are seeded once
// and never change at runtime, so reads go through a small expiring cache
// instead of hitting the store on every draw.
type Service interface {
	Templates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, templateID int64) (*domain.Template, error)
}

type service struct {
	repo  repository.Catalog
	cache *expirable.LRU[string, []domain.Template]
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, []domain.Template](CacheSize, nil, CacheTTL),
	}
}

// Templates returns the full catalog, cached.
func (s *service) Templates(ctx context.Context) ([]domain.Template, error) {
	if templates, ok := s.cache.Get(cacheKeyAll); ok {
		return templates, nil
	}

	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", domain.ErrTemplateNotFound)
	}

	s.cache.Add(cacheKeyAll, templates)
	return templates, nil
}

// GetTemplate returns one template, served from the cached catalog when
// possible.
func (s *service) GetTemplate(ctx context.Context, templateID int64) (*domain.Template, error) {
	if templates, ok := s.cache.Get(cacheKeyAll); ok {
		for i := range templates {
			if templates[i].ID == templateID {
				return &templates[i], nil
			}
		}
		return nil, domain.ErrTemplateNotFound
	}
	return s.repo.GetTemplate(ctx, templateID)
}

// RarestFirst returns rarities sorted rarest to most common. Used by the
// auto-assembly order.
func RarestFirst(rarities []domain.Rarity) []domain.Rarity {
	sorted := make([]domain.Rarity, len(rarities))
	copy(sorted, rarities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.RarityRank(sorted[i]) > domain.RarityRank(sorted[j])
	})
	return sorted
}
