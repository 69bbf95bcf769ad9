// Package inventory periodically publishes the remaining tickets of every
// upcoming event as a Prometheus gauge.
package inventory

import (
	"context"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/metrics"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"fmt"
	"log/slog"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter, now time.Time) ([]models.Event, error)
}

type Collector struct {
	log      *slog.Logger
	events   EventLister
	clock    schedule.Clock
	interval time.Duration
}

func NewCollector(log *slog.Logger, events EventLister, clock schedule.Clock, interval time.Duration) *Collector {
	return &Collector{
		log:      log.With(slog.String("component", "services/inventory")),
		events:   events,
		clock:    clock,
		interval: interval,
	}
}

// Run collects once immediately and then on every tick until ctx is done.
func (c *Collector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if err := c.Collect(ctx); err != nil {
			c.log.Error("failed to collect ticket inventory", sl.Err(err))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// Collect replaces the available-tickets gauge with a fresh snapshot.
func (c *Collector) Collect(ctx context.Context) error {
	const op = "services.inventory.Collect"

	events, err := c.events.ListEvents(ctx, models.FilterUpcoming, c.clock.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	snapshot := make(map[int]int, len(events))
	for _, e := range events {
		snapshot[e.ID] = e.AvailableTickets
	}

	metrics.SetAvailableTickets(snapshot)

	c.log.Debug("ticket inventory collected", slog.Int("events", len(snapshot)))

	return nil
}
