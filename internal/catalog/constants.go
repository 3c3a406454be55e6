package catalog

import (
	"time"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Cache settings. The catalog is a single immutable list; the TTL only
// bounds how long a freshly reseeded dev database stays invisible.
const (
	CacheSize = 1
	CacheTTL  = 10 * time.Minute

	cacheKeyAll = "templates"
)

// Seed composition: number of templates per rarity tier. The uniform
// template pick makes these counts the effective drop weights.
var SeedCounts = map[domain.Rarity]int{
	domain.RarityCommon:    35,
	domain.RaritySuperRare: 25,
	domain.RarityEpic:      15,
	domain.RarityLegendary: 15,
	domain.RarityMythic:    9,
	domain.RarityWild:      1,
}
