package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"time"
)

const eventColumns = `id, title, description, to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS'),
	venue, category, total_tickets, available_tickets, ticket_price, created_at, updated_at`

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Venue,
		&event.Category,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.TicketPrice,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// ListEvents returns events in schedule order. Upcoming and past are decided
// by the combined date and time against now.
func (s *Storage) ListEvents(ctx context.Context, filter models.EventFilter, now time.Time) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	query := `SELECT ` + eventColumns + ` FROM events`
	var args []any

	switch filter {
	case models.FilterUpcoming:
		query += ` WHERE (date + time) >= $1::timestamp ORDER BY date ASC, time ASC, id ASC`
		args = append(args, schedule.SQLTimestamp(now))
	case models.FilterPast:
		query += ` WHERE (date + time) < $1::timestamp ORDER BY date DESC, time DESC, id DESC`
		args = append(args, schedule.SQLTimestamp(now))
	default:
		query += ` ORDER BY date ASC, time ASC, id ASC`
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// CreateEvent stores a new event with every ticket available.
func (s *Storage) CreateEvent(ctx context.Context, e models.NewEvent) (*models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (title, description, date, time, venue, category,
			total_tickets, available_tickets, ticket_price)
		VALUES ($1, $2, $3::date, $4::time, $5, $6, $7, $7, $8)
		RETURNING ` + eventColumns

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query,
		e.Title,
		e.Description,
		e.Date,
		e.Time,
		e.Venue,
		e.Category,
		e.TotalTickets,
		e.TicketPrice,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// UpdateEvent applies the non-nil fields of upd. Ticket counters are never
// written here.
func (s *Storage) UpdateEvent(ctx context.Context, id int, upd models.EventUpdate) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events SET
			title        = COALESCE($2::text, title),
			description  = COALESCE($3::text, description),
			date         = COALESCE($4::date, date),
			time         = COALESCE($5::time, time),
			venue        = COALESCE($6::text, venue),
			category     = COALESCE($7::text, category),
			ticket_price = COALESCE($8::numeric, ticket_price),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query,
		id,
		upd.Title,
		upd.Description,
		upd.Date,
		upd.Time,
		upd.Venue,
		upd.Category,
		upd.TicketPrice,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// DeleteEvent removes the event; its purchases go with it through the
// foreign key cascade.
func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteEvent"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}
