package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	EventName        string    `json:"event_name"`
	TicketTypeID     uuid.UUID `json:"ticket_type_id"`
	TicketTypeName   string    `json:"ticket_type_name"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	Quantity         int       `json:"quantity"`
	UnitPriceCents   int64     `json:"unit_price_cents"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	EventName        string    `json:"event_name"`
	TicketTypeName   string    `json:"ticket_type_name"`
	UserEmail        string    `json:"user_email"`
	Quantity         int       `json:"quantity"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type VenueView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Capacity   int       `json:"capacity"`
	EventCount int64     `json:"event_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EventView struct {
	ID          uuid.UUID        `json:"id"`
	VenueID     uuid.UUID        `json:"venue_id"`
	VenueName   string           `json:"venue_name"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartsAt    time.Time        `json:"starts_at"`
	TicketTypes []TicketTypeView `json:"ticket_types,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type EventListItem struct {
	ID        uuid.UUID `json:"id"`
	VenueName string    `json:"venue_name"`
	Name      string    `json:"name"`
	StartsAt  time.Time `json:"starts_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketTypeView exposes the pool state alongside the catalog fields so the
// availability endpoint is a single read.
type TicketTypeView struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Capacity   int       `json:"capacity"`
	Committed  int       `json:"committed"`
	Available  int       `json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type StatsView struct {
	Venues                int64 `json:"venues"`
	Events                int64 `json:"events"`
	Bookings              int64 `json:"bookings"`
	ConfirmedRevenueCents int64 `json:"confirmed_revenue_cents"`
	TicketsAvailable      int64 `json:"tickets_available"`
	TicketsCommitted      int64 `json:"tickets_committed"`
}

// BookingFilter narrows booking list reads. Zero values mean no filter.
type BookingFilter struct {
	EventID uuid.UUID
	Status  string
	Email   string
}
