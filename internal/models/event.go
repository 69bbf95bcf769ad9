package models

import (
	"errors"
	"github.com/shopspring/decimal"
	"time"
)

// MaxTicketPrice is the largest price a NUMERIC(10,2) column holds.
var MaxTicketPrice = decimal.RequireFromString("99999999.99")

var (
	ErrNegativePrice  = errors.New("must not be negative")
	ErrPriceTooLarge  = errors.New("must not exceed 99999999.99")
	ErrPricePrecision = errors.New("must have at most 2 decimal places")
)

// CheckTicketPrice reports whether p can be stored without rounding or
// overflow.
func CheckTicketPrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return ErrNegativePrice
	case p.GreaterThan(MaxTicketPrice):
		return ErrPriceTooLarge
	case !p.Equal(p.Truncate(2)):
		return ErrPricePrecision
	default:
		return nil
	}
}

type Event struct {
	ID               int             `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Venue            string          `json:"venue"`
	Category         string          `json:"category"`
	TotalTickets     int             `json:"total_tickets"`
	AvailableTickets int             `json:"available_tickets"`
	TicketPrice      decimal.Decimal `json:"ticket_price"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewEvent holds the fields an organizer supplies when publishing an event.
// Available tickets always start equal to TotalTickets.
type NewEvent struct {
	Title        string
	Description  string
	Date         string
	Time         string
	Venue        string
	Category     string
	TotalTickets int
	TicketPrice  decimal.Decimal
}

// EventUpdate lists the fields that may be changed after creation. Nil fields
// are left untouched. Ticket counters cannot be changed here.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Venue       *string
	Category    *string
	TicketPrice *decimal.Decimal
}

func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil && u.Time == nil &&
		u.Venue == nil && u.Category == nil && u.TicketPrice == nil
}

type EventFilter string

const (
	FilterAll      EventFilter = ""
	FilterUpcoming EventFilter = "upcoming"
	FilterPast     EventFilter = "past"
)

// ParseEventFilter maps a query value to a filter; unknown values mean no filter.
func ParseEventFilter(s string) EventFilter {
	switch EventFilter(s) {
	case FilterUpcoming, FilterPast:
		return EventFilter(s)
	default:
		return FilterAll
	}
}
