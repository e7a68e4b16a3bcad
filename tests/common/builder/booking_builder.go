// Package builder provides fluent test-data builders for domain entities and
// read models.
package builder

import (
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/inventory"
	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	pool             inventory.PoolKey
	buyerName        string
	buyerEmail       string
	quantity         int
	unitPriceCents   int64
	confirmationCode string
	now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		pool: inventory.PoolKey{
			EventID:      uuid.New(),
			TicketTypeID: uuid.New(),
		},
		buyerName:        "Jordan Lee",
		buyerEmail:       "jordan@example.com",
		quantity:         2,
		unitPriceCents:   2500,
		confirmationCode: "AB12CD34",
		now:              time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithPool(key inventory.PoolKey) *BookingBuilder {
	b.pool = key
	return b
}

func (b *BookingBuilder) WithBuyer(name, email string) *BookingBuilder {
	b.buyerName = name
	b.buyerEmail = email
	return b
}

func (b *BookingBuilder) WithQuantity(quantity int) *BookingBuilder {
	b.quantity = quantity
	return b
}

func (b *BookingBuilder) WithUnitPriceCents(cents int64) *BookingBuilder {
	b.unitPriceCents = cents
	return b
}

func (b *BookingBuilder) WithConfirmationCode(code string) *BookingBuilder {
	b.confirmationCode = code
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.now = t
	return b
}

// BuildDomain constructs the entity through the same validation path as
// production code.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	buyer, err := booking.NewBuyer(b.buyerName, b.buyerEmail)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(
		b.pool,
		buyer,
		b.quantity,
		booking.ReconstructMoney(b.unitPriceCents),
		b.confirmationCode,
		b.now,
	)
}

// BuildView returns a read-side view consistent with the builder's fields.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               uuid.New(),
		EventID:          b.pool.EventID,
		EventName:        "Spring Jazz Night",
		TicketTypeID:     b.pool.TicketTypeID,
		TicketTypeName:   "General Admission",
		UserName:         b.buyerName,
		UserEmail:        b.buyerEmail,
		Quantity:         b.quantity,
		UnitPriceCents:   b.unitPriceCents,
		TotalPriceCents:  b.unitPriceCents * int64(b.quantity),
		Status:           booking.StatusPending.String(),
		ConfirmationCode: b.confirmationCode,
		CreatedAt:        b.now,
		UpdatedAt:        b.now,
	}
}
