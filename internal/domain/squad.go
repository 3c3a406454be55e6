package domain

// SquadSize is the number of ordered display/battle slots per user.
const SquadSize = 6

// Squad holds a user's slot assignments. A nil entry is an empty slot;
// the same creature may occupy more than one slot.
type Squad struct {
	UserID int64             `json:"user_id"`
	Slots  [SquadSize]*int64 `json:"slots"`
}
