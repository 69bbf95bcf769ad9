package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"github.com/shopspring/decimal"
	"time"
)

// RegisterAttendee sells one ticket: it takes a ticket from the event's
// inventory and records the purchase at the event's price in one
// transaction.
//
// The decrement is a single conditional UPDATE that also re-checks the
// schedule against now, so concurrent callers can never oversell and an
// event cannot close between the check and the write. When the UPDATE
// matches nothing the transaction is rolled back and the cause is reported
// as storage.ErrEventNotFound, storage.ErrEventClosed or storage.ErrSoldOut.
func (s *Storage) RegisterAttendee(ctx context.Context, reg models.Registration, now time.Time) (*models.Ticket, error) {
	const op = "storage.postgres.RegisterAttendee"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	takeTicket := `
		UPDATE events
		SET available_tickets = available_tickets - 1, updated_at = NOW()
		WHERE id = $1
			AND available_tickets >= 1
			AND (date + time) >= $2::timestamp
		RETURNING ticket_price, available_tickets`

	var (
		price     decimal.Decimal
		available int
	)

	err = tx.QueryRowContext(ctx, takeTicket, reg.EventID, schedule.SQLTimestamp(now)).Scan(&price, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, rejection(ctx, tx, reg.EventID, now))
		}
		return nil, fmt.Errorf("%s: failed to take ticket: %w", op, err)
	}

	purchase, err := insertPurchase(ctx, tx, models.NewPurchase{
		EventID:       reg.EventID,
		Amount:        price,
		Attendee:      reg.Attendee,
		PaymentMethod: reg.PaymentMethod,
		Status:        reg.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to record purchase: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return &models.Ticket{
		Purchase:         *purchase,
		AvailableTickets: available,
	}, nil
}

// rejection explains why the conditional decrement matched no row, judged
// against the same now.
func rejection(ctx context.Context, tx *sql.Tx, eventID int, now time.Time) error {
	var date, clock string

	err := tx.QueryRowContext(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS')
		FROM events
		WHERE id = $1`, eventID).Scan(&date, &clock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to read event: %w", err)
	}

	past, err := schedule.IsPast(date, clock, now)
	if err != nil {
		return err
	}

	if past {
		return storage.ErrEventClosed
	}

	return storage.ErrSoldOut
}
