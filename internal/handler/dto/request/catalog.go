package request

import (
	"time"

	"ticket-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type VenueRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Description string `json:"description"`
}

func (r VenueRequest) ToCommand() commands.VenueRequest {
	return commands.VenueRequest{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Description: r.Description,
	}
}

type EventRequest struct {
	VenueID     uuid.UUID `json:"venue_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
}

func (r EventRequest) ToCommand() commands.EventRequest {
	return commands.EventRequest{
		VenueID:     r.VenueID,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
	}
}

type TicketTypeRequest struct {
	EventID    uuid.UUID `json:"event_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"gte=0"`
	Capacity   int       `json:"capacity" binding:"gte=0"`
}

func (r TicketTypeRequest) ToCommand() commands.TicketTypeRequest {
	return commands.TicketTypeRequest{
		EventID:    r.EventID,
		Name:       r.Name,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
	}
}

type UpdatePriceRequest struct {
	PriceCents int64 `json:"price_cents" binding:"gte=0"`
}
