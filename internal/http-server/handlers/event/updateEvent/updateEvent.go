package updateEvent

import (
	"context"
	"encoding/json"
	"errors"
	"eventHub/internal/lib/api/request"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
	"strings"
)

var errNoFields = errors.New("no updatable fields supplied")

// UpdateRequest is a partial update; absent fields keep their value. Ticket
// counters are accepted only so they can be rejected.
type UpdateRequest struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Date             *string          `json:"date"`
	Time             *string          `json:"time"`
	Venue            *string          `json:"venue"`
	Category         *string          `json:"category"`
	TicketPrice      *decimal.Decimal `json:"ticket_price"`
	TotalTickets     json.RawMessage  `json:"total_tickets"`
	AvailableTickets json.RawMessage  `json:"available_tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id int, upd models.EventUpdate) (*models.Event, error)
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := request.PathID(r)
		if err != nil {
			log.Error("bad event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(idMessage(err)))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		upd, err := req.toUpdate()
		if err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		event, err := events.UpdateEvent(r.Context(), eventID, upd)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, event)
	}
}

func (req UpdateRequest) toUpdate() (models.EventUpdate, error) {
	if len(req.TotalTickets) > 0 || len(req.AvailableTickets) > 0 {
		return models.EventUpdate{}, errors.New("ticket counts cannot be changed")
	}

	for field, v := range map[string]*string{
		"title":    req.Title,
		"venue":    req.Venue,
		"category": req.Category,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return models.EventUpdate{}, fmt.Errorf("field %s must not be empty", field)
		}
	}

	upd := models.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Category:    req.Category,
		TicketPrice: req.TicketPrice,
	}

	if req.Date != nil {
		date, err := schedule.ParseDate(*req.Date)
		if err != nil {
			return models.EventUpdate{}, errors.New("field date must match 2006-01-02")
		}
		upd.Date = &date
	}

	if req.Time != nil {
		clock, err := schedule.ParseTime(*req.Time)
		if err != nil {
			return models.EventUpdate{}, errors.New("field time must be HH:MM or HH:MM:SS")
		}
		upd.Time = &clock
	}

	if upd.TicketPrice != nil {
		if err := models.CheckTicketPrice(*upd.TicketPrice); err != nil {
			return models.EventUpdate{}, fmt.Errorf("field ticket_price %w", err)
		}
	}

	if upd.Empty() {
		return models.EventUpdate{}, errNoFields
	}

	return upd, nil
}

func idMessage(err error) string {
	if errors.Is(err, request.ErrMissingID) {
		return "event id is required"
	}
	return "invalid event id format"
}
