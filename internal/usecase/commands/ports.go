package commands

import (
	"context"

	"github.com/google/uuid"
)

// BookingCreatedEvent is published after a booking transaction commits. It
// carries enough for downstream consumers (mail, analytics) to act without
// querying the primary database.
type BookingCreatedEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	EventID          uuid.UUID `json:"event_id"`
	TicketTypeID     uuid.UUID `json:"ticket_type_id"`
	EventName        string    `json:"event_name"`
	TicketTypeName   string    `json:"ticket_type_name"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	Quantity         int       `json:"quantity"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        string    `json:"created_at"`
}

type BookingCancelledEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	EventID      uuid.UUID `json:"event_id"`
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	UserEmail    string    `json:"user_email"`
	Quantity     int       `json:"quantity"`
	CancelledAt  string    `json:"cancelled_at"`
}

// BookingEventPublisher delivers lifecycle events to the message broker.
// Publishing is best effort: failures are logged by the caller and never
// roll back the booking.
type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, evt BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, evt BookingCancelledEvent) error
}
