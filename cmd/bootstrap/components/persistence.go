package components

import (
	"ticket-booking/internal/infra/readstore"
	"ticket-booking/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		readstore.NewBookingReadStore,
		readstore.NewVenueReadStore,
		readstore.NewEventReadStore,
		readstore.NewTicketTypeReadStore,
		readstore.NewStatsReadStore,
	),
)
