package bootstrap

import (
	"time"

	"github.com/apiarygames/hivecore/internal/catalog"
	"github.com/apiarygames/hivecore/internal/crafting"
	"github.com/apiarygames/hivecore/internal/draw"
	"github.com/apiarygames/hivecore/internal/economy"
	"github.com/apiarygames/hivecore/internal/inventory"
	"github.com/apiarygames/hivecore/internal/market"
	"github.com/apiarygames/hivecore/internal/server"
	"github.com/apiarygames/hivecore/internal/squad"
)

// InitializeServices wires the service layer on top of the repositories.
// The draw cooldown is the only tunable the services take from config.
func InitializeServices(repos *Repositories, drawCooldown time.Duration) server.Services {
	catalogService := catalog.NewService(repos.Catalog)
	craftingService := crafting.NewService(repos.Crafting, catalogService)

	return server.Services{
		Draw:      draw.NewService(repos.Draw, catalogService, craftingService, drawCooldown),
		Inventory: inventory.NewService(repos.Inventory, repos.Economy),
		Crafting:  craftingService,
		Economy:   economy.NewService(repos.Economy),
		Market:    market.NewService(repos.Market, repos.Economy),
		Squad:     squad.NewService(repos.Squad),
	}
}
