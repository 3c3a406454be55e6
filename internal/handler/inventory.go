package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/apiarygames/hivecore/internal/domain"
	"github.com/apiarygames/hivecore/internal/inventory"
	"github.com/apiarygames/hivecore/internal/logger"
)

// InventoryResponse represents a user's part stock snapshot
type InventoryResponse struct {
	UserID int64              `json:"user_id"`
	Parts  []domain.PartStock `json:"parts"`
}

// HandleGetInventory returns the user's part stock, optionally filtered
// by template
func HandleGetInventory(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		userID, ok := queryInt64(w, r, "user_id")
		if !ok {
			return
		}

		var templateID *int64
		if raw := r.URL.Query().Get("template_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "template_id"))
				return
			}
			templateID = &id
		}

		parts, err := inventoryService.Snapshot(ctx, userID, templateID)
		if err != nil {
			log.Error("Inventory snapshot failed", "userID", userID, "error", err)
			respondDomainError(w, err, ErrMsgGetInventoryFailed)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{UserID: userID, Parts: parts})
	}
}

// queryInt64 reads a required int64 query parameter, responding with a
// 400 itself when the parameter is missing or malformed.
func queryInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return value, true
}
