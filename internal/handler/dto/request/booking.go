package request

import (
	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID      uuid.UUID `json:"event_id" binding:"required"`
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	UserName     string    `json:"user_name" binding:"required"`
	UserEmail    string    `json:"user_email" binding:"required,email"`
	Quantity     int       `json:"quantity" binding:"required,gt=0"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		EventID:      r.EventID,
		TicketTypeID: r.TicketTypeID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		Quantity:     r.Quantity,
	}
}

type ChangeQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r SetStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}
