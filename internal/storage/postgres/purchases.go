package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"fmt"
	"github.com/google/uuid"
)

const purchaseColumns = `p.id, p.event_id, e.title, p.purchase_date, p.amount, p.status,
	p.attendee_name, p.attendee_email, p.attendee_phone, p.payment_method, p.ticket_code,
	p.created_at, p.updated_at`

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	var purchase models.Purchase

	err := row.Scan(
		&purchase.ID,
		&purchase.EventID,
		&purchase.EventTitle,
		&purchase.PurchaseDate,
		&purchase.Amount,
		&purchase.Status,
		&purchase.AttendeeName,
		&purchase.AttendeeEmail,
		&purchase.AttendeePhone,
		&purchase.PaymentMethod,
		&purchase.TicketCode,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

// ListPurchases returns purchases joined with their event title, newest first.
func (s *Storage) ListPurchases(ctx context.Context, scope models.PurchaseScope) ([]models.Purchase, error) {
	const op = "storage.postgres.ListPurchases"

	query := `SELECT ` + purchaseColumns + ` FROM purchases p JOIN events e ON e.id = p.event_id`
	var args []any

	switch {
	case scope.Email != "":
		query += ` WHERE p.attendee_email = $1`
		args = append(args, scope.Email)
	case scope.EventID != 0:
		query += ` WHERE p.event_id = $1`
		args = append(args, scope.EventID)
	}

	query += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0)
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan purchase: %w", op, err)
		}
		purchases = append(purchases, *purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating purchases: %w", op, err)
	}

	return purchases, nil
}

func (s *Storage) GetPurchase(ctx context.Context, id int) (*models.Purchase, error) {
	const op = "storage.postgres.GetPurchase"

	query := `SELECT ` + purchaseColumns + `
		FROM purchases p JOIN events e ON e.id = p.event_id
		WHERE p.id = $1`

	purchase, err := scanPurchase(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPurchaseNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return purchase, nil
}

// CreatePurchase appends a ledger entry. It neither checks availability nor
// touches inventory; RegisterAttendee does both.
func (s *Storage) CreatePurchase(ctx context.Context, np models.NewPurchase) (*models.Purchase, error) {
	const op = "storage.postgres.CreatePurchase"

	purchase, err := insertPurchase(ctx, s.DB, np)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return purchase, nil
}

func insertPurchase(ctx context.Context, q querier, np models.NewPurchase) (*models.Purchase, error) {
	status := np.Status
	if status == "" {
		status = models.DefaultPurchaseStatus
	}

	query := `
		WITH p AS (
			INSERT INTO purchases (event_id, amount, status, attendee_name, attendee_email,
				attendee_phone, payment_method, ticket_code)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + purchaseColumns + ` FROM p JOIN events e ON e.id = p.event_id`

	purchase, err := scanPurchase(q.QueryRowContext(ctx, query,
		np.EventID,
		np.Amount,
		status,
		np.Attendee.Name,
		np.Attendee.Email,
		np.Attendee.Phone,
		np.PaymentMethod,
		uuid.NewString(),
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, err
	}

	return purchase, nil
}

// UpdatePurchase applies the non-nil administrative fields of upd.
func (s *Storage) UpdatePurchase(ctx context.Context, id int, upd models.PurchaseUpdate) (*models.Purchase, error) {
	const op = "storage.postgres.UpdatePurchase"

	query := `
		WITH p AS (
			UPDATE purchases SET
				status         = COALESCE($2::text, status),
				attendee_name  = COALESCE($3::text, attendee_name),
				attendee_email = COALESCE($4::text, attendee_email),
				attendee_phone = COALESCE($5::text, attendee_phone),
				payment_method = COALESCE($6::text, payment_method),
				updated_at     = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + purchaseColumns + ` FROM p JOIN events e ON e.id = p.event_id`

	purchase, err := scanPurchase(s.DB.QueryRowContext(ctx, query,
		id,
		upd.Status,
		upd.AttendeeName,
		upd.AttendeeEmail,
		upd.AttendeePhone,
		upd.PaymentMethod,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPurchaseNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return purchase, nil
}

// DeletePurchase removes a ledger entry. Inventory is not restored.
func (s *Storage) DeletePurchase(ctx context.Context, id int) error {
	const op = "storage.postgres.DeletePurchase"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPurchaseNotFound)
	}

	return nil
}
