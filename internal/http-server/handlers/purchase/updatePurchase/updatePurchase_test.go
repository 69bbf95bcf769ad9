package updatePurchase

import (
	"bytes"
	"errors"
	"eventHub/internal/http-server/handlers/purchase/updatePurchase/mocks"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePurchaseHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		purchaseID     string
		requestBody    string
		mockSetup      func(mock *mocks.PurchaseUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Refund",
			purchaseID:  "3",
			requestBody: `{"status": "Refunded"}`,
			mockSetup: func(m *mocks.PurchaseUpdater) {
				m.On("UpdatePurchase", mock.Anything, 3, mock.MatchedBy(func(u models.PurchaseUpdate) bool {
					return u.Status != nil && *u.Status == "Refunded" &&
						u.AttendeeName == nil && u.AttendeeEmail == nil
				})).Return(&models.Purchase{ID: 3, Status: "Refunded"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Refunded"`)
			},
		},
		{
			name:        "Change attendee",
			purchaseID:  "3",
			requestBody: `{"attendee_name": "Grace Hopper", "attendee_email": "grace@example.com"}`,
			mockSetup: func(m *mocks.PurchaseUpdater) {
				m.On("UpdatePurchase", mock.Anything, 3, mock.MatchedBy(func(u models.PurchaseUpdate) bool {
					return *u.AttendeeName == "Grace Hopper" && *u.AttendeeEmail == "grace@example.com"
				})).Return(&models.Purchase{ID: 3, AttendeeName: "Grace Hopper"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Amount is immutable",
			purchaseID:     "3",
			requestBody:    `{"amount": 0}`,
			mockSetup:      func(m *mocks.PurchaseUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event_id and amount cannot be changed"}`,
		},
		{
			name:           "Event is immutable",
			purchaseID:     "3",
			requestBody:    `{"event_id": 2, "status": "Completed"}`,
			mockSetup:      func(m *mocks.PurchaseUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event_id and amount cannot be changed"}`,
		},
		{
			name:           "Empty body",
			purchaseID:     "3",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.PurchaseUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"no updatable fields supplied"}`,
		},
		{
			name:           "Malformed email",
			purchaseID:     "3",
			requestBody:    `{"attendee_email": "grace"}`,
			mockSetup:      func(m *mocks.PurchaseUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field attendee_email is not a valid email"}`,
		},
		{
			name:        "Purchase not found",
			purchaseID:  "77",
			requestBody: `{"status": "Refunded"}`,
			mockSetup: func(m *mocks.PurchaseUpdater) {
				m.On("UpdatePurchase", mock.Anything, 77, mock.Anything).
					Return(nil, fmt.Errorf("storage.postgres.UpdatePurchase: %w", storage.ErrPurchaseNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"purchase not found"}`,
		},
		{
			name:        "Database error",
			purchaseID:  "3",
			requestBody: `{"status": "Refunded"}`,
			mockSetup: func(m *mocks.PurchaseUpdater) {
				m.On("UpdatePurchase", mock.Anything, 3, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update purchase"}`,
		},
		{
			name:           "Invalid JSON",
			purchaseID:     "3",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.PurchaseUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewPurchaseUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Patch("/purchases/{id}", New(logger, updater))

			req, err := http.NewRequest(http.MethodPatch, "/purchases/"+tc.purchaseID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

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
