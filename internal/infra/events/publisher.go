// Package events publishes booking lifecycle events to RabbitMQ. Delivery is
// best effort: the booking is already committed when a publish runs, so
// broker failures are logged and swallowed by the caller.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
)

type AMQPPublisher struct {
	conn *amqp.Connection

	// amqp channels are not safe for concurrent use
	mu sync.Mutex
	ch *amqp.Channel
}

var _ commands.BookingEventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher connects and declares the lifecycle queues up front, so a
// misconfigured broker fails at startup rather than on the first booking.
func NewAMQPPublisher(url string) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	for _, queue := range []string{QueueBookingCreated, QueueBookingCancelled} {
		// Durable so messages survive broker restarts.
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, errs.Wrap(err, "failed to declare queue "+queue)
		}
	}

	p := &AMQPPublisher{conn: conn, ch: ch}
	cleanup := func() {
		_ = p.ch.Close()
		_ = p.conn.Close()
	}
	return p, cleanup, nil
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, evt commands.BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, evt)
}

func (p *AMQPPublisher) PublishBookingCancelled(ctx context.Context, evt commands.BookingCancelledEvent) error {
	return p.publish(ctx, QueueBookingCancelled, evt)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, evt any) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish to "+queue)
	}
	return nil
}

// NoopPublisher is used when no broker is configured (AMQP_URL empty).
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

var _ commands.BookingEventPublisher = (*NoopPublisher)(nil)

func (NoopPublisher) PublishBookingCreated(context.Context, commands.BookingCreatedEvent) error {
	return nil
}

func (NoopPublisher) PublishBookingCancelled(context.Context, commands.BookingCancelledEvent) error {
	return nil
}
