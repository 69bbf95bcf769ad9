package deletePurchase

import (
	"context"
	"errors"
	"eventHub/internal/lib/api/request"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/storage"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PurchaseDeleter
type PurchaseDeleter interface {
	DeletePurchase(ctx context.Context, id int) error
}

// New removes a purchase. The ticket is not returned to the event's inventory.
func New(log *slog.Logger, purchases PurchaseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.purchase.deletePurchase.New"

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

		if err = purchases.DeletePurchase(r.Context(), purchaseID); err != nil {
			if errors.Is(err, storage.ErrPurchaseNotFound) {
				log.Info("purchase not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("purchase not found"))
				return
			}

			log.Error("failed to delete purchase", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete purchase"))
			return
		}

		log.Info("purchase deleted")

		render.JSON(w, r, response.Deleted("Purchase deleted successfully"))
	}
}
