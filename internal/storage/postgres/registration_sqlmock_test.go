package postgres

import (
	"context"
	"errors"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/models"
	"eventHub/internal/storage"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAttendeeClassifiesRejections(t *testing.T) {
	t.Parallel()

	reg := models.Registration{
		EventID:       7,
		Attendee:      models.Attendee{Name: "Ada Lovelace", Email: "ada@example.com"},
		PaymentMethod: "card",
	}

	testCases := []struct {
		name    string
		event   *sqlmock.Rows
		wantErr error
	}{
		{
			name:    "Unknown event",
			event:   sqlmock.NewRows([]string{"date", "time"}),
			wantErr: storage.ErrEventNotFound,
		},
		{
			name:    "Event already started",
			event:   sqlmock.NewRows([]string{"date", "time"}).AddRow("2030-06-15", "11:59:59"),
			wantErr: storage.ErrEventClosed,
		},
		{
			name:    "Starts exactly now but sold out",
			event:   sqlmock.NewRows([]string{"date", "time"}).AddRow("2030-06-15", "12:00:00"),
			wantErr: storage.ErrSoldOut,
		},
		{
			name:    "Future event sold out",
			event:   sqlmock.NewRows([]string{"date", "time"}).AddRow("2030-07-01", "18:00:00"),
			wantErr: storage.ErrSoldOut,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			mock.ExpectBegin()
			mock.ExpectQuery(`UPDATE events`).
				WithArgs(reg.EventID, schedule.SQLTimestamp(testNow)).
				WillReturnRows(sqlmock.NewRows([]string{"ticket_price", "available_tickets"}))
			mock.ExpectQuery(`SELECT to_char`).
				WithArgs(reg.EventID).
				WillReturnRows(tc.event)
			mock.ExpectRollback()

			s := &Storage{DB: db}

			ticket, err := s.RegisterAttendee(context.Background(), reg, testNow)

			assert.Nil(t, ticket)
			assert.ErrorIs(t, err, tc.wantErr)
			// No purchase insert and no commit may follow a rejected decrement.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegisterAttendeeDecrementFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE events`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	s := &Storage{DB: db}

	_, err = s.RegisterAttendee(context.Background(), models.Registration{EventID: 7}, testNow)

	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrSoldOut)
	assert.NotErrorIs(t, err, storage.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
