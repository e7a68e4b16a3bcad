//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"ticket-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := booking.NewMoney(1999)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), m.Cents())
	assert.InDelta(t, 19.99, m.Dollars(), 0.001)

	zero, err := booking.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Cents())

	_, err = booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativeMoney)
}

func TestNewBuyer(t *testing.T) {
	t.Run("valid buyer", func(t *testing.T) {
		b, err := booking.NewBuyer("Sam Rivera", "sam@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Sam Rivera", b.Name())
		assert.Equal(t, "sam@example.com", b.Email())
	})

	t.Run("name and email are trimmed", func(t *testing.T) {
		b, err := booking.NewBuyer("  Sam Rivera  ", "  sam@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "Sam Rivera", b.Name())
		assert.Equal(t, "sam@example.com", b.Email())
	})

	t.Run("name validation", func(t *testing.T) {
		_, err := booking.NewBuyer("", "sam@example.com")
		assert.ErrorIs(t, err, booking.ErrEmptyBuyerName)

		_, err = booking.NewBuyer("   ", "sam@example.com")
		assert.ErrorIs(t, err, booking.ErrEmptyBuyerName)

		_, err = booking.NewBuyer(strings.Repeat("a", booking.MaxBuyerNameLength), "sam@example.com")
		assert.NoError(t, err)

		_, err = booking.NewBuyer(strings.Repeat("a", booking.MaxBuyerNameLength+1), "sam@example.com")
		assert.ErrorIs(t, err, booking.ErrBuyerNameTooLong)
	})

	t.Run("email validation", func(t *testing.T) {
		for _, invalid := range []string{"", "no-at-sign", "@leading", "trailing@", "@"} {
			_, err := booking.NewBuyer("Sam", invalid)
			assert.ErrorIs(t, err, booking.ErrInvalidEmail, "input %q", invalid)
		}
	})
}
