package domain

// PartKind is one of the four components required to assemble a creature.
type PartKind string

const (
	PartWing  PartKind = "wing"
	PartBody  PartKind = "body"
	PartSting PartKind = "sting"
	PartHead  PartKind = "head"
)

// PartKinds lists every part kind. Assembly consumes exactly one of each.
var PartKinds = []PartKind{PartWing, PartBody, PartSting, PartHead}

// IsValidPartKind reports whether k is one of the four part kinds.
func IsValidPartKind(k PartKind) bool {
	for _, known := range PartKinds {
		if known == k {
			return true
		}
	}
	return false
}

// PartStock is a user's stock of one part kind at one (template, rarity).
// Rows are created lazily on first award and may sit at zero; Amount is
// never negative.
type PartStock struct {
	UserID     int64    `json:"user_id"`
	TemplateID int64    `json:"template_id"`
	Kind       PartKind `json:"kind"`
	Rarity     Rarity   `json:"rarity"`
	Amount     int      `json:"amount"`
}
