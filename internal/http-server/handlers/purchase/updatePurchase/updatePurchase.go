package updatePurchase

import (
	"context"
	"encoding/json"
	"errors"
	"eventHub/internal/lib/api/request"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strings"
)

// UpdateRequest is the administrative partial update. event_id and amount are
// part of the ledger and cannot be edited.
type UpdateRequest struct {
	Status        *string         `json:"status"`
	AttendeeName  *string         `json:"attendee_name"`
	AttendeeEmail *string         `json:"attendee_email"`
	AttendeePhone *string         `json:"attendee_phone"`
	PaymentMethod *string         `json:"payment_method"`
	EventID       json.RawMessage `json:"event_id"`
	Amount        json.RawMessage `json:"amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PurchaseUpdater
type PurchaseUpdater interface {
	UpdatePurchase(ctx context.Context, id int, upd models.PurchaseUpdate) (*models.Purchase, error)
}

func New(log *slog.Logger, purchases PurchaseUpdater) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.purchase.updatePurchase.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		purchaseID, err := request.PathID(r)
		if err != nil {
			log.Error("bad purchase id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid purchase id format"))
			return
		}

		log = log.With(slog.Int("purchase_id", purchaseID))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if msg := req.problem(validate); msg != "" {
			log.Error("invalid request", slog.String("reason", msg))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msg))
			return
		}

		purchase, err := purchases.UpdatePurchase(r.Context(), purchaseID, models.PurchaseUpdate{
			Status:        req.Status,
			AttendeeName:  req.AttendeeName,
			AttendeeEmail: req.AttendeeEmail,
			AttendeePhone: req.AttendeePhone,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			if errors.Is(err, storage.ErrPurchaseNotFound) {
				log.Info("purchase not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("purchase not found"))
				return
			}

			log.Error("failed to update purchase", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update purchase"))
			return
		}

		log.Info("purchase updated")

		render.JSON(w, r, purchase)
	}
}

func (req UpdateRequest) problem(validate *validator.Validate) string {
	switch {
	case len(req.EventID) > 0 || len(req.Amount) > 0:
		return "event_id and amount cannot be changed"
	case req.Status == nil && req.AttendeeName == nil && req.AttendeeEmail == nil &&
		req.AttendeePhone == nil && req.PaymentMethod == nil:
		return "no updatable fields supplied"
	case req.Status != nil && strings.TrimSpace(*req.Status) == "":
		return "field status must not be empty"
	case req.AttendeeName != nil && strings.TrimSpace(*req.AttendeeName) == "":
		return "field attendee_name must not be empty"
	case req.PaymentMethod != nil && strings.TrimSpace(*req.PaymentMethod) == "":
		return "field payment_method must not be empty"
	case req.AttendeeEmail != nil && validate.Var(*req.AttendeeEmail, "required,email") != nil:
		return "field attendee_email is not a valid email"
	}

	return ""
}
