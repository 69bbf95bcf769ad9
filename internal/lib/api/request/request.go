package request

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strconv"
)

var (
	ErrMissingID = errors.New("id is required")
	ErrInvalidID = errors.New("invalid id format")
)

// PathID reads the {id} URL parameter as a positive integer.
func PathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, ErrMissingID
	}

	return ParseID(raw)
}

// ParseID parses a positive id that fits the 32-bit SERIAL columns.
func ParseID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return int(id), nil
}
