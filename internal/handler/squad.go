package handler

import (
	"encoding/json"
	"net/http"

	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/squad"
)

// SetSlotRequest represents a squad slot assignment request
type SetSlotRequest struct {
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	Slot       int   `json:"slot" validate:"required,min=1,max=6"`
	CreatureID int64 `json:"creature_id" validate:"required,gt=0"`
}

// HandleSetSlot assigns an owned creature to a squad slot
func HandleSetSlot(squadService squad.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req SetSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := squadService.SetSlot(ctx, req.UserID, req.Slot, req.CreatureID); err != nil {
			log.Error("Slot assignment failed", "userID", req.UserID, "slot", req.Slot, "error", err)
			respondDomainError(w, err, ErrMsgSetSlotFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Slot assigned"})
	}
}

// HandleGetSquad returns the user's squad, empty slots included
func HandleGetSquad(squadService squad.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		userID, ok := queryInt64(w, r, "user_id")
		if !ok {
			return
		}

		sq, err := squadService.GetSquad(ctx, userID)
		if err != nil {
			log.Error("Squad lookup failed", "userID", userID, "error", err)
			respondDomainError(w, err, ErrMsgGetSquadFailed)
			return
		}

		respondJSON(w, http.StatusOK, sq)
	}
}
