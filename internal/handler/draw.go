package handler

import (
	"encoding/json"
	"net/http"

	"github.com/apiarygames/hivecore/internal/draw"
	"github.com/apiarygames/hivecore/internal/logger"
)

// DrawRequest represents a reward draw request
type DrawRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// HandleDraw performs one cooldown-gated reward draw for the user
func HandleDraw(drawService draw.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req DrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		result, err := drawService.Draw(ctx, req.UserID)
		if err != nil {
			log.Error("Draw failed", "userID", req.UserID, "error", err)
			respondDomainError(w, err, ErrMsgDrawFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
