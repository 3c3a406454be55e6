package handler

import (
	"encoding/json"
	"net/http"

	"github.com/apiarygames/hivecore/internal/logger"
	"github.com/apiarygames/hivecore/internal/market"
)

// ListCreatureRequest represents a request to list a creature for sale
type ListCreatureRequest struct {
	SellerID   int64 `json:"seller_id" validate:"required,gt=0"`
	CreatureID int64 `json:"creature_id" validate:"required,gt=0"`
	Price      int64 `json:"price" validate:"required,gt=0"`
}

// BuyListingRequest represents a purchase request
type BuyListingRequest struct {
	BuyerID   int64 `json:"buyer_id" validate:"required,gt=0"`
	ListingID int64 `json:"listing_id" validate:"required,gt=0"`
}

// CancelListingRequest represents a listing cancellation request
type CancelListingRequest struct {
	SellerID  int64 `json:"seller_id" validate:"required,gt=0"`
	ListingID int64 `json:"listing_id" validate:"required,gt=0"`
}

// HandleListCreature puts a creature up for sale
func HandleListCreature(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req ListCreatureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		listing, err := marketService.List(ctx, req.SellerID, req.CreatureID, req.Price)
		if err != nil {
			log.Error("Listing failed", "sellerID", req.SellerID, "creatureID", req.CreatureID, "error", err)
			respondDomainError(w, err, ErrMsgListCreatureFailed)
			return
		}

		respondJSON(w, http.StatusCreated, listing)
	}
}

// HandleBuyListing settles a purchase of an active listing
func HandleBuyListing(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req BuyListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		listing, err := marketService.Buy(ctx, req.BuyerID, req.ListingID)
		if err != nil {
			log.Error("Purchase failed", "buyerID", req.BuyerID, "listingID", req.ListingID, "error", err)
			respondDomainError(w, err, ErrMsgBuyListingFailed)
			return
		}

		respondJSON(w, http.StatusOK, listing)
	}
}

// HandleCancelListing removes the seller's own active listing
func HandleCancelListing(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req CancelListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := marketService.Cancel(ctx, req.SellerID, req.ListingID); err != nil {
			log.Error("Cancellation failed", "sellerID", req.SellerID, "listingID", req.ListingID, "error", err)
			respondDomainError(w, err, ErrMsgCancelListingFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Listing cancelled"})
	}
}

// HandleGetListings returns every active listing, oldest first
func HandleGetListings(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		listings, err := marketService.ActiveListings(ctx)
		if err != nil {
			log.Error("Listing lookup failed", "error", err)
			respondDomainError(w, err, ErrMsgGetListingsFailed)
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}
