package listPurchases

import (
	"context"
	"eventHub/internal/lib/api/request"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PurchaseLister
type PurchaseLister interface {
	ListPurchases(ctx context.Context, scope models.PurchaseScope) ([]models.Purchase, error)
}

// New lists purchases, newest first. ?email= takes precedence over ?eventId=.
func New(log *slog.Logger, purchases PurchaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.purchase.listPurchases.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()

		scope := models.PurchaseScope{Email: q.Get("email")}

		if raw := q.Get("eventId"); raw != "" && scope.Email == "" {
			eventID, err := request.ParseID(raw)
			if err != nil {
				log.Error("invalid event id format", slog.String("event_id", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event id format"))
				return
			}
			scope.EventID = eventID
		}

		list, err := purchases.ListPurchases(r.Context(), scope)
		if err != nil {
			log.Error("failed to list purchases", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get purchases"))
			return
		}

		log.Info("purchases retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
