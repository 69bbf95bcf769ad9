package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		date     string
		clock    string
		upcoming bool
	}{
		{name: "Later date, earlier time of day", date: "2025-06-16", clock: "08:00:00", upcoming: true},
		{name: "Earlier date, later time of day", date: "2025-06-14", clock: "23:00:00", upcoming: false},
		{name: "Same date, later time", date: "2025-06-15", clock: "12:00:01", upcoming: true},
		{name: "Same date, earlier time", date: "2025-06-15", clock: "11:59:59", upcoming: false},
		{name: "Exactly now counts as upcoming", date: "2025-06-15", clock: "12:00:00", upcoming: true},
		{name: "Short time format", date: "2025-06-15", clock: "12:01", upcoming: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			upcoming, err := IsUpcoming(tc.date, tc.clock, now)
			require.NoError(t, err)
			assert.Equal(t, tc.upcoming, upcoming)

			past, err := IsPast(tc.date, tc.clock, now)
			require.NoError(t, err)
			assert.Equal(t, !tc.upcoming, past)
		})
	}
}

func TestIsUpcomingUsesNowLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	// 10:00 UTC is 13:00 at UTC+3, so a 12:30 local event has already started.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC).In(loc)

	upcoming, err := IsUpcoming("2025-06-15", "12:30", now)
	require.NoError(t, err)
	assert.False(t, upcoming)
}

func TestInvalidInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := IsUpcoming("15/06/2025", "12:00", now)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = IsUpcoming("2025-06-15", "noon", now)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = ParseTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestParseTimeNormalizes(t *testing.T) {
	t.Parallel()

	got, err := ParseTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", got)

	got, err = ParseTime("09:30:15")
	require.NoError(t, err)
	assert.Equal(t, "09:30:15", got)
}

func TestSQLTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-01-02 03:04:05", SQLTimestamp(now))
}

func TestFixedClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, Fixed(at).Now().Equal(at))
}
