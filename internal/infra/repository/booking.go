package repository

import (
	"context"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

const createBookingSQL = `
	INSERT INTO bookings (
		id, event_id, ticket_type_id, user_name, user_email,
		quantity, unit_price_cents, total_price_cents, status,
		confirmation_code, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.Pool().EventID,
		b.Pool().TicketTypeID,
		b.Buyer().Name(),
		b.Buyer().Email(),
		b.Quantity(),
		b.UnitPrice().Cents(),
		b.TotalPrice().Cents(),
		b.Status().String(),
		b.ConfirmationCode(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingSQL = `
	UPDATE bookings
	SET quantity = $2, total_price_cents = $3, status = $4,
	    confirmation_code = $5, updated_at = $6
	WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.Quantity(),
		b.TotalPrice().Cents(),
		b.Status().String(),
		b.ConfirmationCode(),
		b.UpdatedAt(),
	)
	if err != nil {
		return classifyPgErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
