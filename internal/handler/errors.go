package handler

import (
	"errors"
	"net/http"

	"github.com/apiarygames/hivecore/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidRequest     = "Invalid request"
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgInvalidQueryParam  = "Invalid %s query parameter"

	ErrMsgDrawFailed          = "Failed to draw reward"
	ErrMsgGetInventoryFailed  = "Failed to get inventory"
	ErrMsgAssembleFailed      = "Failed to assemble creature"
	ErrMsgSellPartsFailed     = "Failed to sell parts"
	ErrMsgGetBalanceFailed    = "Failed to get balance"
	ErrMsgListCreatureFailed  = "Failed to list creature"
	ErrMsgBuyListingFailed    = "Failed to buy listing"
	ErrMsgCancelListingFailed = "Failed to cancel listing"
	ErrMsgGetListingsFailed   = "Failed to get listings"
	ErrMsgGetCreaturesFailed  = "Failed to get creatures"
	ErrMsgSetSlotFailed       = "Failed to set squad slot"
	ErrMsgGetSquadFailed      = "Failed to get squad"
)

// respondDomainError maps engine errors onto HTTP statuses. Domain errors
// are safe to echo; anything unrecognised gets the generic message.
func respondDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrCooldownActive{}):
		respondError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrCreatureNotFound),
		errors.Is(err, domain.ErrListingNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNotEnoughParts),
		errors.Is(err, domain.ErrAlreadyListed),
		errors.Is(err, domain.ErrListingGone):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
