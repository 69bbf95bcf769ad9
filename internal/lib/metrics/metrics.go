package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"strconv"
	"time"
)

// Registration outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeClosed   = "closed"
	OutcomeSoldOut  = "sold_out"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_registrations_total",
			Help: "Ticket registrations by outcome",
		},
		[]string{"outcome"},
	)

	publishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventhub_publish_failures_total",
			Help: "purchase.completed messages that could not be published",
		},
	)

	availableTickets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "eventhub_available_tickets",
			Help: "Remaining tickets per upcoming event",
		},
		[]string{"event_id"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventhub_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func TrackRegistration(outcome string) {
	registrations.WithLabelValues(outcome).Inc()
}

func Registrations(outcome string) prometheus.Counter {
	return registrations.WithLabelValues(outcome)
}

func TrackPublishFailure() {
	publishFailures.Inc()
}

// SetAvailableTickets replaces the gauge series with the given snapshot so
// events that closed or were deleted stop being reported.
func SetAvailableTickets(snapshot map[int]int) {
	availableTickets.Reset()
	for eventID, available := range snapshot {
		availableTickets.WithLabelValues(strconv.Itoa(eventID)).Set(float64(available))
	}
}

func AvailableTickets(eventID int) prometheus.Gauge {
	return availableTickets.WithLabelValues(strconv.Itoa(eventID))
}

func ObserveRequest(method, route string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func PublishFailures() prometheus.Counter {
	return publishFailures
}

func AvailableTicketsCollector() prometheus.Collector {
	return availableTickets
}

func RequestDurationCollector() prometheus.Collector {
	return requestDuration
}
