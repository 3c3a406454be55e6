package handler

import (
	"encoding/json"
	"net/http"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/economy"
	"github.com/apiarygames/hivecore/internal/logger"
)

// BalanceResponse represents a user's coin balance
type BalanceResponse struct {
	UserID int64 `json:"user_id"`
	Coins  int64 `json:"coins"`
}

// SellPartsRequest represents a part sale request
type SellPartsRequest struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	TemplateID int64  `json:"template_id" validate:"required,gt=0"`
	Kind       string `json:"kind" validate:"required,oneof=wing body sting head"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// SellPartsResponse represents the outcome of a part sale
type SellPartsResponse struct {
	CoinsGained int64         `json:"coins_gained"`
	Rarity      domain.Rarity `json:"rarity"`
}

// HandleGetBalance returns the user's coin balance
func HandleGetBalance(economyService economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		userID, ok := queryInt64(w, r, "user_id")
		if !ok {
			return
		}

		coins, err := economyService.Balance(ctx, userID)
		if err != nil {
			log.Error("Balance lookup failed", "userID", userID, "error", err)
			respondDomainError(w, err, ErrMsgGetBalanceFailed)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Coins: coins})
	}
}

// HandleSellParts sells parts from the user's richest stock row for the
// given template and kind
func HandleSellParts(economyService economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req SellPartsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		coins, rarity, err := economyService.SellParts(ctx, req.UserID, req.TemplateID, domain.PartKind(req.Kind), req.Quantity)
		if err != nil {
			log.Error("Part sale failed", "userID", req.UserID, "templateID", req.TemplateID, "error", err)
			respondDomainError(w, err, ErrMsgSellPartsFailed)
			return
		}

		respondJSON(w, http.StatusOK, SellPartsResponse{CoinsGained: coins, Rarity: rarity})
	}
}
