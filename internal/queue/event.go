// Package queue defines message payloads published to the broker.
package queue

// PurchaseCompletedEvent is published after a registration commits. It carries
// enough for downstream consumers (ticket e-mails, dashboards) to act without
// reading the database.
type PurchaseCompletedEvent struct {
	PurchaseID       int    `json:"purchase_id"`
	EventID          int    `json:"event_id"`
	EventTitle       string `json:"event_title"`
	TicketCode       string `json:"ticket_code"`
	AttendeeName     string `json:"attendee_name"`
	AttendeeEmail    string `json:"attendee_email"`
	Amount           string `json:"amount"`
	AvailableTickets int    `json:"available_tickets"`
	PurchasedAt      string `json:"purchased_at"`
}
