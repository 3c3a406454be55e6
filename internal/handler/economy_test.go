package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/apiarygames/hivecore/internal/domain"
)

func TestHandleGetBalance(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockEconomyService{}
		mockSvc.On("Balance", mock.Anything, int64(42)).Return(int64(1250), nil)

		req := httptest.NewRequest("GET", "/api/v1/balance?user_id=42", nil)
		rec := httptest.NewRecorder()

		HandleGetBalance(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"coins":1250`)
	})

	t.Run("Missing User ID", func(t *testing.T) {
		mockSvc := &MockEconomyService{}

		req := httptest.NewRequest("GET", "/api/v1/balance", nil)
		rec := httptest.NewRecorder()

		HandleGetBalance(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Balance")
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockSvc := &MockEconomyService{}
		mockSvc.On("Balance", mock.Anything, int64(99)).Return(int64(0), domain.ErrUserNotFound)

		req := httptest.NewRequest("GET", "/api/v1/balance?user_id=99", nil)
		rec := httptest.NewRecorder()

		HandleGetBalance(mockSvc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleSellParts(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockEconomyService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			body: `{"user_id": 42, "template_id": 7, "kind": "wing", "quantity": 3}`,
			setupMock: func(m *MockEconomyService) {
				m.On("SellParts", mock.Anything, int64(42), int64(7), domain.PartWing, 3).
					Return(int64(2400), domain.RarityEpic, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"coins_gained":2400`)
				assert.Contains(t, body, `"rarity":"epic"`)
			},
		},
		{
			name: "Insufficient Stock",
			body: `{"user_id": 42, "template_id": 7, "kind": "wing", "quantity": 50}`,
			setupMock: func(m *MockEconomyService) {
				m.On("SellParts", mock.Anything, int64(42), int64(7), domain.PartWing, 50).
					Return(int64(0), domain.Rarity(""), domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusConflict,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Rejects Unknown Kind",
			body:           `{"user_id": 42, "template_id": 7, "kind": "antenna", "quantity": 1}`,
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockEconomyService{}
			tt.setupMock(mockSvc)

			handler := HandleSellParts(mockSvc)

			req := httptest.NewRequest("POST", "/api/v1/parts/sell", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
