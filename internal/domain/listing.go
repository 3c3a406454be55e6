package domain

import "time"

// Listing is an open offer to sell one creature at a fixed price.
// At most one active listing exists per creature; the seller stays the
// effective owner until a purchase commits.
type Listing struct {
	ID         int64     `json:"id"`
	SellerID   int64     `json:"seller_id"`
	CreatureID int64     `json:"creature_id"`
	Price      int64     `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
