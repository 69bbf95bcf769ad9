package listEvents

import (
	"context"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter, now time.Time) ([]models.Event, error)
}

// TimeFiltered reports whether the listing depends on the current time and
// therefore must not be served from a cache.
func TimeFiltered(r *http.Request) bool {
	return models.ParseEventFilter(r.URL.Query().Get("filter")) != models.FilterAll
}

// New lists the catalog. ?filter=upcoming and ?filter=past narrow it by the
// combined start instant; any other value returns every event.
func New(log *slog.Logger, events EventLister, clock schedule.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		filter := models.ParseEventFilter(r.URL.Query().Get("filter"))

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("filter", string(filter)),
		)

		list, err := events.ListEvents(r.Context(), filter, clock.Now())
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
