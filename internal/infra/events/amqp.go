package events

import (
	"context"

	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
}

// DialAMQP connects and declares the durable queue events are published to.
func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func newAMQPPublisher(ch channel, queue string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue}
}

func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	body, err := encode(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	err = p.ch.PublishWithContext(
		ctx,
		"", // default exchange routes by queue name
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ReservationID.String(),
			Timestamp:    event.CreatedAt,
			Type:         "ReservationCreated",
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "failed to publish reservation event to %s", p.queue)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	chErr := p.ch.Close()
	if p.conn == nil {
		return chErr
	}
	if err := p.conn.Close(); err != nil {
		return err
	}
	return chErr
}
