package domain

// Template is an immutable catalog entry describing a creature species.
// The catalog is seeded once; tier composition implicitly weights draws.
type Template struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Rarity    Rarity `json:"rarity"`
	Role      string `json:"role"`
	BaseValue int64  `json:"base_value"`
}

// Creature roles carried over from the template at assembly time.
const (
	RoleTank    = "tank"
	RoleHealer  = "healer"
	RoleSupport = "support"
)
