package bootstrap

import (
	"context"
	"log/slog"

	"ticket-booking/internal/infra/events"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewBookingEventPublisher,
	),
)

// NewBookingEventPublisher falls back to a no-op publisher when no broker
// is configured so bookings never depend on AMQP availability.
func NewBookingEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.BookingEventPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("amqp not configured, booking events disabled")
		return events.NewNoopPublisher(), nil
	}

	publisher, cleanup, err := events.NewAMQPPublisher(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher, nil
}
