package components

import (
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/confirmation"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		confirmation.NewRandomGenerator,

		queries.NewBookingQueries,
		queries.NewVenueQueries,
		queries.NewEventQueries,
		queries.NewTicketTypeQueries,
		queries.NewStatsQueries,

		commands.NewBookingUseCase,
		commands.NewVenueUseCase,
		commands.NewEventUseCase,
		commands.NewTicketTypeUseCase,
		commands.NewAuthCommands,
	),
)
