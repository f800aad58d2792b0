package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"truefans/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher implements EventPublisher on a durable RabbitMQ queue.
// One connection is kept open; its channel is reopened after a failure.
type amqpPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the event queue
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &amqpPublisher{
		url:    url,
		queue:  queue,
		logger: logger,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *amqpPublisher) connectLocked() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return errors.Wrap(err, "rabbitmq dial failed")
		}
		p.conn = conn
		p.channel = nil
	}

	if p.channel == nil || p.channel.IsClosed() {
		ch, err := p.conn.Channel()
		if err != nil {
			return errors.Wrap(err, "rabbitmq channel open failed")
		}

		// Durable so messages survive broker restarts.
		if _, err := ch.QueueDeclare(
			p.queue, // name
			true,    // durable
			false,   // autoDelete
			false,   // exclusive
			false,   // noWait
			nil,     // args
		); err != nil {
			_ = ch.Close()

			return errors.Wrapf(err, "rabbitmq queue declare %s failed", p.queue)
		}
		p.channel = ch
	}

	return nil
}

// PublishPassEvent publishes a persistent message to the event queue
func (p *amqpPublisher) PublishPassEvent(ctx context.Context, event *service.PassEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          event.Type,
		Timestamp:     event.OccurredAt.UTC(),
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return err
	}

	if err := p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.DebugContext(ctx, "[RabbitMQ] Event published",
		slog.String("event_type", event.Type),
		slog.String("pass_id", event.PassID),
	)

	return nil
}

// Close closes the channel and the connection
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		_ = p.channel.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
