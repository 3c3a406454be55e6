package handler

import (
	"encoding/json"
	"net/http"

	"github.com/apiarygames/hivecore/internal/crafting"
	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/logger"
)

// AssembleRequest represents a creature assembly request. When Rarity is
// empty the engine picks the rarest tier the user can complete.
type AssembleRequest struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	TemplateID int64  `json:"template_id" validate:"required,gt=0"`
	Rarity     string `json:"rarity" validate:"omitempty,oneof=common super_rare epic legendary mythic wild"`
}

// AssembleResponse represents a successful assembly
type AssembleResponse struct {
	CreatureID int64         `json:"creature_id"`
	Rarity     domain.Rarity `json:"rarity"`
}

// HandleAssemble assembles one creature from a full part set
func HandleAssemble(craftingService crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req AssembleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var (
			creatureID int64
			rarity     domain.Rarity
			err        error
		)
		if req.Rarity == "" {
			creatureID, rarity, err = craftingService.AutoAssembleBestRarity(ctx, req.UserID, req.TemplateID)
		} else {
			rarity = domain.Rarity(req.Rarity)
			creatureID, err = craftingService.TryAssemble(ctx, req.UserID, req.TemplateID, rarity)
		}
		if err != nil {
			log.Error("Assembly failed", "userID", req.UserID, "templateID", req.TemplateID, "error", err)
			respondDomainError(w, err, ErrMsgAssembleFailed)
			return
		}

		respondJSON(w, http.StatusOK, AssembleResponse{CreatureID: creatureID, Rarity: rarity})
	}
}

// HandleGetCreatures returns every creature the user owns
func HandleGetCreatures(craftingService crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		userID, ok := queryInt64(w, r, "user_id")
		if !ok {
			return
		}

		creatures, err := craftingService.CreaturesByOwner(ctx, userID)
		if err != nil {
			log.Error("Creature lookup failed", "userID", userID, "error", err)
			respondDomainError(w, err, ErrMsgGetCreaturesFailed)
			return
		}

		respondJSON(w, http.StatusOK, creatures)
	}
}
