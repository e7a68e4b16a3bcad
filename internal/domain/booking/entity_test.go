//go:build unit

package booking_test

import (
	"testing"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, 2, actual.Quantity())
		assert.Equal(t, int64(2500), actual.UnitPrice().Cents())
		assert.Equal(t, int64(5000), actual.TotalPrice().Cents())
		assert.Equal(t, "AB12CD34", actual.ConfirmationCode())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.BookingBuilder) { b.WithQuantity(1) },
			},
			{
				name:   "zero quantity",
				mutate: func(b *builder.BookingBuilder) { b.WithQuantity(0) },
				errIs:  booking.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.BookingBuilder) { b.WithQuantity(-3) },
				errIs:  booking.ErrInvalidQuantity,
			},
		})
	})

	t.Run("confirmation code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty confirmation code",
				mutate: func(b *builder.BookingBuilder) { b.WithConfirmationCode("") },
				errIs:  booking.ErrEmptyConfirmation,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestBookingTransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("pending to confirmed keeps the hold", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(4).BuildDomain()
		require.NoError(t, err)

		delta, err := b.TransitionTo(booking.StatusConfirmed, now)
		require.NoError(t, err)
		assert.Equal(t, 0, delta)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("pending to cancelled releases the full quantity", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(4).BuildDomain()
		require.NoError(t, err)

		delta, err := b.TransitionTo(booking.StatusCancelled, now)
		require.NoError(t, err)
		assert.Equal(t, -4, delta)
		assert.True(t, b.IsCancelled())
	})

	t.Run("confirmed to cancelled releases the full quantity", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(3).BuildDomain()
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusConfirmed, now)
		require.NoError(t, err)

		delta, err := b.TransitionTo(booking.StatusCancelled, now)
		require.NoError(t, err)
		assert.Equal(t, -3, delta)
	})

	t.Run("cancelled to pending re-reserves the full quantity", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(5).BuildDomain()
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusCancelled, now)
		require.NoError(t, err)

		delta, err := b.TransitionTo(booking.StatusPending, now)
		require.NoError(t, err)
		assert.Equal(t, 5, delta)
		assert.True(t, b.IsActive())
	})

	t.Run("same-status transition is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusPending, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("confirmed cannot revert to pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusConfirmed, now)
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusPending, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestBookingChangeQuantity(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("growing returns a positive delta and reprices", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(2).WithUnitPriceCents(1500).BuildDomain()
		require.NoError(t, err)

		delta, err := b.ChangeQuantity(5, now)
		require.NoError(t, err)
		assert.Equal(t, 3, delta)
		assert.Equal(t, 5, b.Quantity())
		assert.Equal(t, int64(7500), b.TotalPrice().Cents())
		assert.Equal(t, int64(1500), b.UnitPrice().Cents())
	})

	t.Run("shrinking returns a negative delta", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(5).BuildDomain()
		require.NoError(t, err)

		delta, err := b.ChangeQuantity(2, now)
		require.NoError(t, err)
		assert.Equal(t, -3, delta)
		assert.Equal(t, 2, b.Quantity())
	})

	t.Run("same quantity is a zero delta, still reprices from the snapshot", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(2).BuildDomain()
		require.NoError(t, err)

		delta, err := b.ChangeQuantity(2, now)
		require.NoError(t, err)
		assert.Equal(t, 0, delta)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(2).BuildDomain()
		require.NoError(t, err)

		_, err = b.ChangeQuantity(0, now)
		require.ErrorIs(t, err, booking.ErrInvalidQuantity)
		assert.Equal(t, 2, b.Quantity())
	})

	t.Run("cancelled bookings cannot be resized", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithQuantity(2).BuildDomain()
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusCancelled, now)
		require.NoError(t, err)

		_, err = b.ChangeQuantity(3, now)
		require.ErrorIs(t, err, booking.ErrBookingCancelled)
	})
}

func TestBookingPriceSnapshot(t *testing.T) {
	// The total always derives from the unit price captured at creation;
	// resizing never consults the catalog.
	b, err := builder.NewBookingBuilder().WithQuantity(1).WithUnitPriceCents(9900).BuildDomain()
	require.NoError(t, err)

	_, err = b.ChangeQuantity(3, time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(9900), b.UnitPrice().Cents())
	assert.Equal(t, int64(29700), b.TotalPrice().Cents())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
