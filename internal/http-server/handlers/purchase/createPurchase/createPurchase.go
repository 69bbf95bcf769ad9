package createPurchase

import (
	"context"
	"errors"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/registration"
	"eventHub/internal/storage"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

// PurchaseRequest is the checkout body. A client-supplied amount is not read;
// the ticket is always charged at the event's listed price.
type PurchaseRequest struct {
	EventID       int             `json:"eventId" validate:"required,gt=0,lte=2147483647"`
	AttendeeInfo  models.Attendee `json:"attendeeInfo"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	Status        string          `json:"status"`
}

// PurchaseResponse carries the stored purchase and what is left of the event.
type PurchaseResponse struct {
	models.Purchase
	AvailableTickets int `json:"available_tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, reg models.Registration) (*models.Ticket, error)
}

func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.purchase.createPurchase.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req PurchaseRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.Int("event_id", req.EventID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		ticket, err := registrar.Register(r.Context(), models.Registration{
			EventID:       req.EventID,
			Attendee:      req.AttendeeInfo,
			PaymentMethod: req.PaymentMethod,
			Status:        req.Status,
		})
		if err != nil {
			status, msg := rejection(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to create purchase", sl.Err(err))
			} else {
				log.Info("purchase rejected", sl.Err(err))
			}

			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		log.Info("purchase created",
			slog.Int("purchase_id", ticket.Purchase.ID),
			slog.Int("available_tickets", ticket.AvailableTickets),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, PurchaseResponse{
			Purchase:         ticket.Purchase,
			AvailableTickets: ticket.AvailableTickets,
		})
	}
}

func rejection(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrSoldOut):
		return http.StatusConflict, "no tickets available"
	case errors.Is(err, storage.ErrEventClosed):
		return http.StatusBadRequest, "cannot register for past events"
	case errors.Is(err, storage.ErrEventNotFound):
		return http.StatusBadRequest, "event not found"
	case errors.Is(err, registration.ErrInvalidRegistration):
		return http.StatusBadRequest, "invalid registration"
	default:
		return http.StatusInternalServerError, "failed to create purchase"
	}
}
