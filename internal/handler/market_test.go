package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
)

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:         5,
		SellerID:   42,
		CreatureID: 9,
		Price:      1000,
		CreatedAt:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleListCreature(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockMarketService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"seller_id": 42, "creature_id": 9, "price": 1000}`,
			setupMock: func(m *MockMarketService) {
				m.On("List", mock.Anything, int64(42), int64(9), int64(1000)).Return(testListing(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Not Owner",
			body: `{"seller_id": 13, "creature_id": 9, "price": 1000}`,
			setupMock: func(m *MockMarketService) {
				m.On("List", mock.Anything, int64(13), int64(9), int64(1000)).Return(nil, domain.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Already Listed",
			body: `{"seller_id": 42, "creature_id": 9, "price": 1000}`,
			setupMock: func(m *MockMarketService) {
				m.On("List", mock.Anything, int64(42), int64(9), int64(1000)).Return(nil, domain.ErrAlreadyListed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Rejects Zero Price",
			body:           `{"seller_id": 42, "creature_id": 9, "price": 0}`,
			setupMock:      func(m *MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockMarketService{}
			tt.setupMock(mockSvc)

			handler := HandleListCreature(mockSvc)

			req := httptest.NewRequest("POST", "/api/v1/market/list", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleBuyListing(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockMarketService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"buyer_id": 13, "listing_id": 5}`,
			setupMock: func(m *MockMarketService) {
				m.On("Buy", mock.Anything, int64(13), int64(5)).Return(testListing(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Listing Gone",
			body: `{"buyer_id": 13, "listing_id": 5}`,
			setupMock: func(m *MockMarketService) {
				m.On("Buy", mock.Anything, int64(13), int64(5)).Return(nil, domain.ErrListingGone)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Insufficient Funds",
			body: `{"buyer_id": 13, "listing_id": 5}`,
			setupMock: func(m *MockMarketService) {
				m.On("Buy", mock.Anything, int64(13), int64(5)).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Invalid Body",
			body:           `{"buyer_id": "nope"}`,
			setupMock:      func(m *MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockMarketService{}
			tt.setupMock(mockSvc)

			handler := HandleBuyListing(mockSvc)

			req := httptest.NewRequest("POST", "/api/v1/market/buy", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleCancelListing(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockMarketService{}
		mockSvc.On("Cancel", mock.Anything, int64(42), int64(5)).Return(nil)

		req := httptest.NewRequest("POST", "/api/v1/market/cancel",
			strings.NewReader(`{"seller_id": 42, "listing_id": 5}`))
		rec := httptest.NewRecorder()

		HandleCancelListing(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockSvc := &MockMarketService{}
		mockSvc.On("Cancel", mock.Anything, int64(13), int64(5)).Return(domain.ErrNotOwner)

		req := httptest.NewRequest("POST", "/api/v1/market/cancel",
			strings.NewReader(`{"seller_id": 13, "listing_id": 5}`))
		rec := httptest.NewRecorder()

		HandleCancelListing(mockSvc)(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleGetListings(t *testing.T) {
	mockSvc := &MockMarketService{}
	mockSvc.On("ActiveListings", mock.Anything).Return([]domain.Listing{*testListing()}, nil)

	req := httptest.NewRequest("GET", "/api/v1/market", nil)
	rec := httptest.NewRecorder()

	HandleGetListings(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":1000`)
}
