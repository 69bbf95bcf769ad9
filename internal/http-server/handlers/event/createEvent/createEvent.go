package createEvent

import (
	"context"
	"errors"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
)

type TicketsRequest struct {
	Total int             `json:"total" validate:"required,gt=0,lte=2147483647"`
	Price decimal.Decimal `json:"price"`
}

type EventRequest struct {
	Title       string         `json:"title" validate:"required,notblank"`
	Description string         `json:"description"`
	Date        string         `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string         `json:"time" validate:"required"`
	Venue       string         `json:"venue" validate:"required,notblank"`
	Category    string         `json:"category" validate:"required,notblank"`
	Tickets     TicketsRequest `json:"tickets"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, e models.NewEvent) (*models.Event, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		startTime, err := schedule.ParseTime(req.Time)
		if err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field Time must be HH:MM or HH:MM:SS"))

			return
		}

		if err = models.CheckTicketPrice(req.Tickets.Price); err != nil {
			log.Error("invalid request", slog.String("price", req.Tickets.Price.String()), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field Price "+err.Error()))

			return
		}

		event, err := events.CreateEvent(r.Context(), models.NewEvent{
			Title:        req.Title,
			Description:  req.Description,
			Date:         req.Date,
			Time:         startTime,
			Venue:        req.Venue,
			Category:     req.Category,
			TotalTickets: req.Tickets.Total,
			TicketPrice:  req.Tickets.Price,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, event)
	}
}
