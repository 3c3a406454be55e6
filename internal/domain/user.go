package domain

import "time"

// User is a player account. Created on first interaction, never deleted.
// Coins are mutated only by the economy ledger; LastDrawAt only by the
// reward drafter.
type User struct {
	ID         int64      `json:"id"`
	Coins      int64      `json:"coins"`
	LastDrawAt *time.Time `json:"last_draw_at,omitempty"`
}
