package domain

// Rarity is one of the six catalog tiers, ordered from most common to rarest.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RaritySuperRare Rarity = "super_rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
	RarityWild      Rarity = "wild"
)

// RarityOrder lists the tiers from most common to rarest. Drop frequency is
// NOT derived from this order: the catalog is seeded with a fixed number of
// templates per tier and draws pick uniformly over templates, so tier
// composition alone determines drop weight.
var RarityOrder = []Rarity{
	RarityCommon,
	RaritySuperRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
	RarityWild,
}

// RarityRank returns the position of r in RarityOrder (0 = most common).
// Unknown rarities sort after every known tier.
func RarityRank(r Rarity) int {
	for i, known := range RarityOrder {
		if known == r {
			return i
		}
	}
	return len(RarityOrder)
}

// IsValidRarity reports whether r is one of the six catalog tiers.
func IsValidRarity(r Rarity) bool {
	return RarityRank(r) < len(RarityOrder)
}

// PartBaseValue is the per-part coin value for each tier, used by the
// part-sale path.
var PartBaseValue = map[Rarity]int64{
	RarityCommon:    50,
	RaritySuperRare: 200,
	RarityEpic:      800,
	RarityLegendary: 3000,
	RarityMythic:    12000,
	RarityWild:      50000,
}
