// Package registration sells tickets: it validates the attendee, asks the
// ledger to take a ticket and record the purchase atomically, and announces
// the committed purchase on the broker.
package registration

import (
	"context"
	"errors"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/metrics"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"eventHub/internal/queue"
	"eventHub/internal/storage"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"time"
)

const publishTimeout = 3 * time.Second

var ErrInvalidRegistration = errors.New("invalid registration")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Ledger
type Ledger interface {
	RegisterAttendee(ctx context.Context, reg models.Registration, now time.Time) (*models.Ticket, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	PublishPurchaseCompleted(ctx context.Context, ev queue.PurchaseCompletedEvent) error
}

type Service struct {
	log       *slog.Logger
	ledger    Ledger
	publisher Publisher
	clock     schedule.Clock
	validate  *validator.Validate
}

// New builds the service. publisher may be nil, in which case nothing is
// announced.
func New(log *slog.Logger, ledger Ledger, publisher Publisher, clock schedule.Clock) *Service {
	return &Service{
		log:       log.With(slog.String("component", "services/registration")),
		ledger:    ledger,
		publisher: publisher,
		clock:     clock,
		validate:  validator.New(),
	}
}

// Register sells one ticket for reg.EventID at the event's listed price.
func (s *Service) Register(ctx context.Context, reg models.Registration) (*models.Ticket, error) {
	const op = "services.registration.Register"

	log := s.log.With(slog.String("op", op), slog.Int("event_id", reg.EventID))

	if err := s.check(reg); err != nil {
		metrics.TrackRegistration(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ticket, err := s.ledger.RegisterAttendee(ctx, reg, s.clock.Now())
	if err != nil {
		metrics.TrackRegistration(outcome(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.TrackRegistration(metrics.OutcomeSuccess)

	log.Info("ticket sold",
		slog.Int("purchase_id", ticket.Purchase.ID),
		slog.Int("available_tickets", ticket.AvailableTickets),
	)

	s.announce(ctx, log, ticket)

	return ticket, nil
}

func (s *Service) check(reg models.Registration) error {
	if reg.EventID <= 0 {
		return fmt.Errorf("%w: event id must be positive", ErrInvalidRegistration)
	}

	if err := s.validate.Struct(reg.Attendee); err != nil {
		return errors.Join(ErrInvalidRegistration, err)
	}

	if reg.PaymentMethod == "" {
		return fmt.Errorf("%w: payment method is required", ErrInvalidRegistration)
	}

	return nil
}

// announce publishes the committed purchase. The sale stands even when the
// broker is unavailable.
func (s *Service) announce(ctx context.Context, log *slog.Logger, ticket *models.Ticket) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	p := ticket.Purchase

	err := s.publisher.PublishPurchaseCompleted(ctx, queue.PurchaseCompletedEvent{
		PurchaseID:       p.ID,
		EventID:          p.EventID,
		EventTitle:       p.EventTitle,
		TicketCode:       p.TicketCode,
		AttendeeName:     p.AttendeeName,
		AttendeeEmail:    p.AttendeeEmail,
		Amount:           p.Amount.StringFixed(2),
		AvailableTickets: ticket.AvailableTickets,
		PurchasedAt:      p.PurchaseDate.UTC().Format(time.RFC3339),
	})
	if err != nil {
		metrics.TrackPublishFailure()
		log.Warn("failed to publish purchase.completed", sl.Err(err))
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, storage.ErrEventClosed):
		return metrics.OutcomeClosed
	case errors.Is(err, storage.ErrSoldOut):
		return metrics.OutcomeSoldOut
	default:
		return metrics.OutcomeError
	}
}
