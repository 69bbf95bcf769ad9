package storage

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrEventClosed      = errors.New("registration is closed for past events")
	ErrSoldOut          = errors.New("no tickets available")
)
