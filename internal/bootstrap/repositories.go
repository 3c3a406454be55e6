package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apiarygames/hivecore/internal/database/postgres"
	"github.com/apiarygames/hivecore/internal/repository"
)

// Repositories holds all repository implementations used by the engine.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Economy   repository.Economy
	Inventory repository.Inventory
	Draw      repository.Draw
	Crafting  repository.Crafting
	Market    repository.Market
	Squad     repository.Squad
	Catalog   repository.Catalog
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Economy:   postgres.NewEconomyRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Draw:      postgres.NewDrawRepository(dbPool),
		Crafting:  postgres.NewCraftingRepository(dbPool),
		Market:    postgres.NewMarketRepository(dbPool),
		Squad:     postgres.NewSquadRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
	}
}
