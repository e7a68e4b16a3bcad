package response

import (
	"time"

	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"eventId"`
	EventName        string    `json:"eventName"`
	TicketTypeID     uuid.UUID `json:"ticketTypeId"`
	TicketTypeName   string    `json:"ticketTypeName"`
	UserName         string    `json:"userName"`
	UserEmail        string    `json:"userEmail"`
	Quantity         int       `json:"quantity"`
	UnitPriceCents   int64     `json:"unitPriceCents"`
	TotalPriceCents  int64     `json:"totalPriceCents"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmationCode"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID               uuid.UUID `json:"id"`
	EventName        string    `json:"eventName"`
	TicketTypeName   string    `json:"ticketTypeName"`
	UserEmail        string    `json:"userEmail"`
	Quantity         int       `json:"quantity"`
	TotalPriceCents  int64     `json:"totalPriceCents"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmationCode"`
	CreatedAt        time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID,
		EventID:          v.EventID,
		EventName:        v.EventName,
		TicketTypeID:     v.TicketTypeID,
		TicketTypeName:   v.TicketTypeName,
		UserName:         v.UserName,
		UserEmail:        v.UserEmail,
		Quantity:         v.Quantity,
		UnitPriceCents:   v.UnitPriceCents,
		TotalPriceCents:  v.TotalPriceCents,
		Status:           v.Status,
		ConfirmationCode: v.ConfirmationCode,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListItemResponse {
	return &BookingListItemResponse{
		ID:               v.ID,
		EventName:        v.EventName,
		TicketTypeName:   v.TicketTypeName,
		UserEmail:        v.UserEmail,
		Quantity:         v.Quantity,
		TotalPriceCents:  v.TotalPriceCents,
		Status:           v.Status,
		ConfirmationCode: v.ConfirmationCode,
		CreatedAt:        v.CreatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{
		Items: make([]*BookingListItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = FromBookingListItem(item)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
