package getPayment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festRegistration/internal/http-server/handlers/payment/getPayment/mocks"
	"festRegistration/internal/lib/logger/handlers/slogdiscard"
	"festRegistration/internal/models"
	"festRegistration/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaymentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	amount := 150
	testPayment := &models.Payment{
		ID:             3,
		Email:          "asha@example.com",
		Amount:         &amount,
		ScreenshotName: "paid.png",
		Status:         models.PaymentPending,
		CreatedAt:      time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		paymentID      string
		mockSetup      func(m *mocks.PaymentGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			paymentID: "3",
			mockSetup: func(m *mocks.PaymentGetter) {
				m.On("GetPayment", int64(3)).Return(testPayment, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp PaymentResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Payment)
				assert.Equal(t, int64(3), resp.Payment.ID)
				assert.Equal(t, models.PaymentPending, resp.Payment.Status)
				assert.Equal(t, 150, *resp.Payment.Amount)
			},
		},
		{
			name:           "Invalid payment ID format",
			paymentID:      "abc",
			mockSetup:      func(m *mocks.PaymentGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid payment id format"}`,
		},
		{
			name:      "Payment not found",
			paymentID: "999",
			mockSetup: func(m *mocks.PaymentGetter) {
				m.On("GetPayment", int64(999)).Return(nil, storage.ErrPaymentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"payment not found"}`,
		},
		{
			name:      "Wrapped not found",
			paymentID: "998",
			mockSetup: func(m *mocks.PaymentGetter) {
				m.On("GetPayment", int64(998)).Return(nil, fmt.Errorf("lookup: %w", storage.ErrPaymentNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"payment not found"}`,
		},
		{
			name:      "Internal server error",
			paymentID: "1",
			mockSetup: func(m *mocks.PaymentGetter) {
				m.On("GetPayment", int64(1)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get payment"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewPaymentGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/api/payments/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/api/payments/"+tc.paymentID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	getter := mocks.NewPaymentGetter(t)
	handler := New(slogdiscard.NewDiscardLogger(), getter)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "payment id is required")
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	getter := mocks.NewPaymentGetter(t)
	getter.On("GetPayment", int64(123)).Return(&models.Payment{ID: 123, Status: models.PaymentFailed}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"failed"`)
}
