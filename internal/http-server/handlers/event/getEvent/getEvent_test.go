package getEvent

import (
	"context"
	"encoding/json"
	"errors"
	"eventHub/internal/http-server/handlers/event/getEvent/mocks"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvent := &models.Event{
		ID:               1,
		Title:            "Go Meetup",
		Description:      "Monthly gathering",
		Date:             "2030-07-01",
		Time:             "18:00:00",
		Venue:            "Hall A",
		Category:         "Tech",
		TotalTickets:     100,
		AvailableTickets: 99,
		TicketPrice:      decimal.RequireFromString("99.99"),
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, 1).Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var event models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &event))

				assert.Equal(t, 1, event.ID)
				assert.Equal(t, "Go Meetup", event.Title)
				assert.Equal(t, "2030-07-01", event.Date)
				assert.Equal(t, "18:00:00", event.Time)
				assert.Equal(t, 100, event.TotalTickets)
				assert.Equal(t, 99, event.AvailableTickets)
			},
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Negative event ID",
			eventID:        "-3",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Event ID beyond integer range",
			eventID:        "3000000000",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Event not found",
			eventID: "999",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, 999).
					Return(nil, fmt.Errorf("storage.postgres.GetEvent: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Database error",
			eventID: "1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, 1).Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/events/{id}", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
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

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	getter := mocks.NewEventGetter(t)
	getter.On("GetEvent", mock.Anything, 123).Return(&models.Event{ID: 123}, nil)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	getter := mocks.NewEventGetter(t)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event id is required")
}
