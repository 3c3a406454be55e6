package domain

// Creature is an assembled unit. Created only by the crafting engine;
// ownership moves only through marketplace settlement.
type Creature struct {
	ID         int64  `json:"id"`
	OwnerID    int64  `json:"owner_id"`
	TemplateID int64  `json:"template_id"`
	Rarity     Rarity `json:"rarity"`
	Role       string `json:"role"`
	Level      int    `json:"level"`
	Exp        int    `json:"exp"`
}
