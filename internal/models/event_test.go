package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckTicketPrice(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		price   string
		wantErr error
	}{
		{price: "0"},
		{price: "10.5"},
		{price: "10.500"},
		{price: "99999999.99"},
		{price: "-0.01", wantErr: ErrNegativePrice},
		{price: "100000000", wantErr: ErrPriceTooLarge},
		{price: "10.999", wantErr: ErrPricePrecision},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.price, func(t *testing.T) {
			t.Parallel()

			err := CheckTicketPrice(decimal.RequireFromString(tc.price))
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseEventFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FilterUpcoming, ParseEventFilter("upcoming"))
	assert.Equal(t, FilterPast, ParseEventFilter("past"))
	assert.Equal(t, FilterAll, ParseEventFilter("soon"))
	assert.Equal(t, FilterAll, ParseEventFilter(""))
}
