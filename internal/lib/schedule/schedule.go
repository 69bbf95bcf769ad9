// Package schedule classifies events as upcoming or past.
//
// An event's date and time of day are always combined into a single instant
// before comparing with "now", so an event on a later date but an earlier time
// of day is still upcoming. The same rule backs the SQL listing and the
// registration check; SQLTimestamp renders "now" in the form the queries
// compare against.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	shortTimeLayout = "15:04"
	sqlLayout       = "2006-01-02 15:04:05"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// ParseDate validates a YYYY-MM-DD date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.Format(DateLayout), nil
}

// ParseTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func ParseTime(s string) (string, error) {
	for _, layout := range []string{TimeLayout, shortTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// Combine joins a date and a time of day into one instant in loc.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(sqlLayout, d+" "+c, loc)
}

// IsUpcoming reports whether the event starts at or after now. The event's
// wall-clock fields are read in now's location.
func IsUpcoming(date, clock string, now time.Time) (bool, error) {
	start, err := Combine(date, clock, now.Location())
	if err != nil {
		return false, err
	}
	return !start.Before(now), nil
}

// IsPast is the complement of IsUpcoming.
func IsPast(date, clock string, now time.Time) (bool, error) {
	upcoming, err := IsUpcoming(date, clock, now)
	if err != nil {
		return false, err
	}
	return !upcoming, nil
}

// SQLTimestamp renders now as a wall-clock timestamp comparable with
// (date + time) columns.
func SQLTimestamp(now time.Time) string {
	return now.Format(sqlLayout)
}
