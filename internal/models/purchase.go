package models

import (
	"github.com/shopspring/decimal"
	"time"
)

const DefaultPurchaseStatus = "Completed"

type Purchase struct {
	ID            int             `json:"id"`
	EventID       int             `json:"event_id"`
	EventTitle    string          `json:"event_title,omitempty"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	AttendeeName  string          `json:"attendee_name"`
	AttendeeEmail string          `json:"attendee_email"`
	AttendeePhone string          `json:"attendee_phone"`
	PaymentMethod string          `json:"payment_method"`
	TicketCode    string          `json:"ticket_code"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Attendee struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// NewPurchase is a ledger entry before it is stored.
type NewPurchase struct {
	EventID       int
	Amount        decimal.Decimal
	Attendee      Attendee
	PaymentMethod string
	Status        string
}

// Registration is a request to buy one ticket for an event at its listed price.
type Registration struct {
	EventID       int
	Attendee      Attendee
	PaymentMethod string
	Status        string
}

// Ticket is a committed registration together with the event's remaining inventory.
type Ticket struct {
	Purchase         Purchase
	AvailableTickets int
}

// PurchaseUpdate is the administrative partial update. EventID and Amount
// cannot be changed.
type PurchaseUpdate struct {
	Status        *string
	AttendeeName  *string
	AttendeeEmail *string
	AttendeePhone *string
	PaymentMethod *string
}

func (u PurchaseUpdate) Empty() bool {
	return u.Status == nil && u.AttendeeName == nil && u.AttendeeEmail == nil &&
		u.AttendeePhone == nil && u.PaymentMethod == nil
}

// PurchaseScope narrows a purchase listing. At most one field is used; Email
// wins over EventID.
type PurchaseScope struct {
	Email   string
	EventID int
}
