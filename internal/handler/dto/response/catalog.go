package response

import (
	"time"

	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type VenueResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Capacity   int       `json:"capacity"`
	EventCount int64     `json:"eventCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type VenueListResponse struct {
	Items      []*VenueResponse `json:"items"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

type TicketTypeResponse struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"eventId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Capacity   int       `json:"capacity"`
	Committed  int       `json:"committed"`
	Available  int       `json:"available"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type EventResponse struct {
	ID          uuid.UUID             `json:"id"`
	VenueID     uuid.UUID             `json:"venueId"`
	VenueName   string                `json:"venueName"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	StartsAt    time.Time             `json:"startsAt"`
	TicketTypes []*TicketTypeResponse `json:"ticketTypes,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type EventListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	VenueName string    `json:"venueName"`
	Name      string    `json:"name"`
	StartsAt  time.Time `json:"startsAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventListResponse struct {
	Items      []*EventListItemResponse `json:"items"`
	NextCursor string                   `json:"nextCursor,omitempty"`
}

type StatsResponse struct {
	Venues                int64 `json:"venues"`
	Events                int64 `json:"events"`
	Bookings              int64 `json:"bookings"`
	ConfirmedRevenueCents int64 `json:"confirmedRevenueCents"`
	TicketsAvailable      int64 `json:"ticketsAvailable"`
	TicketsCommitted      int64 `json:"ticketsCommitted"`
}

func FromVenueView(v *queries.VenueView) *VenueResponse {
	return &VenueResponse{
		ID:         v.ID,
		Name:       v.Name,
		Location:   v.Location,
		Capacity:   v.Capacity,
		EventCount: v.EventCount,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromVenueViews(items []*queries.VenueView, next *queries.Cursor) *VenueListResponse {
	resp := &VenueListResponse{Items: make([]*VenueResponse, len(items))}
	for i, item := range items {
		resp.Items[i] = FromVenueView(item)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromTicketTypeView(v *queries.TicketTypeView) *TicketTypeResponse {
	return &TicketTypeResponse{
		ID:         v.ID,
		EventID:    v.EventID,
		Name:       v.Name,
		PriceCents: v.PriceCents,
		Capacity:   v.Capacity,
		Committed:  v.Committed,
		Available:  v.Available,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromTicketTypeViews(items []*queries.TicketTypeView) []*TicketTypeResponse {
	resp := make([]*TicketTypeResponse, len(items))
	for i, item := range items {
		resp[i] = FromTicketTypeView(item)
	}
	return resp
}

func FromEventView(v *queries.EventView) *EventResponse {
	resp := &EventResponse{
		ID:          v.ID,
		VenueID:     v.VenueID,
		VenueName:   v.VenueName,
		Name:        v.Name,
		Description: v.Description,
		StartsAt:    v.StartsAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	for i := range v.TicketTypes {
		resp.TicketTypes = append(resp.TicketTypes, FromTicketTypeView(&v.TicketTypes[i]))
	}
	return resp
}

func FromEventListItems(items []*queries.EventListItem, next *queries.Cursor) *EventListResponse {
	resp := &EventListResponse{Items: make([]*EventListItemResponse, len(items))}
	for i, item := range items {
		resp.Items[i] = &EventListItemResponse{
			ID:        item.ID,
			VenueName: item.VenueName,
			Name:      item.Name,
			StartsAt:  item.StartsAt,
			CreatedAt: item.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		Venues:                v.Venues,
		Events:                v.Events,
		Bookings:              v.Bookings,
		ConfirmedRevenueCents: v.ConfirmedRevenueCents,
		TicketsAvailable:      v.TicketsAvailable,
		TicketsCommitted:      v.TicketsCommitted,
	}
}
