package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Lookup errors
	ErrMsgUserNotFound     = "user not found"
	ErrMsgTemplateNotFound = "template not found"
	ErrMsgCreatureNotFound = "creature not found"
	ErrMsgListingNotFound  = "listing not found"

	// Inventory errors
	ErrMsgInsufficientStock = "insufficient stock"

	// Crafting errors
	ErrMsgNotEnoughParts = "not enough parts"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Marketplace errors
	ErrMsgNotOwner      = "not the owner"
	ErrMsgInvalidPrice  = "invalid price"
	ErrMsgAlreadyListed = "creature already listed"
	ErrMsgListingGone   = "listing no longer active"

	// Squad errors
	ErrMsgInvalidSlot = "invalid squad slot"

	// Cooldown errors
	ErrMsgCooldownActive = "draw on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// These errors should be used consistently across all layers of the engine.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound     = errors.New(ErrMsgUserNotFound)
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrCreatureNotFound = errors.New(ErrMsgCreatureNotFound)
	ErrListingNotFound  = errors.New(ErrMsgListingNotFound)

	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrNotEnoughParts    = errors.New(ErrMsgNotEnoughParts)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrNotOwner      = errors.New(ErrMsgNotOwner)
	ErrInvalidPrice  = errors.New(ErrMsgInvalidPrice)
	ErrAlreadyListed = errors.New(ErrMsgAlreadyListed)
	ErrListingGone   = errors.New(ErrMsgListingGone)

	ErrInvalidSlot  = errors.New(ErrMsgInvalidSlot)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ErrCooldownActive is returned when a draw happens inside the cooldown
// window. Remaining is how long until the next draw is allowed.
type ErrCooldownActive struct {
	Remaining time.Duration
}

func (e ErrCooldownActive) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%s: %dh %dm remaining", ErrMsgCooldownActive, hours, minutes)
	}
	return fmt.Sprintf("%s: %dm remaining", ErrMsgCooldownActive, minutes)
}

// Is allows errors.Is() to work with ErrCooldownActive.
func (e ErrCooldownActive) Is(target error) bool {
	_, ok := target.(ErrCooldownActive)
	return ok
}
