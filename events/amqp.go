package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publishChannel is the part of *amqp091.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes events to a durable topic exchange, using the
// event type as routing key.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  publishChannel
	exchange string
	log      *slog.Logger
}

func NewAMQPPublisher(url, exchange string, log *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &AMQPPublisher{conn: conn, channel: channel, exchange: exchange, log: log}
	if err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		p.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return p, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		e.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    e.OccurredAt,
			Type:         e.Type,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	p.log.DebugContext(ctx, "published event", "type", e.Type, "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
