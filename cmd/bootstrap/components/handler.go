package components

import (
	"ticket-booking/internal/handler"
	"ticket-booking/internal/handler/api"
	"ticket-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewVenueHandler,
		api.NewEventHandler,
		api.NewTicketTypeHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	venue *api.VenueHandler,
	event *api.EventHandler,
	ticketType *api.TicketTypeHandler,
	stats *api.StatsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Booking:    booking,
		Venue:      venue,
		Event:      event,
		TicketType: ticketType,
		Stats:      stats,
	}
}
