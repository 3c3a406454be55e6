package domain

import "time"

// DrawResult is what a single reward draw produced.
type DrawResult struct {
	TemplateID   int64    `json:"template_id"`
	TemplateName string   `json:"template_name"`
	Rarity       Rarity   `json:"rarity"`
	Kind         PartKind `json:"kind"`
	Quantity     int      `json:"quantity"`
	// AssembledID is set when the follow-up assembly attempt minted a
	// creature from the freshly awarded parts.
	AssembledID *int64 `json:"assembled_id,omitempty"`
}

// DrawLogEntry is one row of the append-only draw audit log.
type DrawLogEntry struct {
	UserID     int64     `json:"user_id"`
	TemplateID int64     `json:"template_id"`
	Kind       PartKind  `json:"kind"`
	Rarity     Rarity    `json:"rarity"`
	Amount     int       `json:"amount"`
	At         time.Time `json:"at"`
}
