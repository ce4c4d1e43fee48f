// Package events publishes domain events to RabbitMQ so other services
// (invoicing, notifications) can react to bookings without coupling to the
// API process.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingCreatedQueue is the durable queue booking events land on.
const BookingCreatedQueue = "booking.created"

// BookingCreated is the payload published when a booking is made.
type BookingCreated struct {
	BookingID string    `json:"bookingId"`
	TourID    string    `json:"tourId"`
	UserID    string    `json:"userId"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher emits domain events.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	Close() error
}

// AMQPPublisher publishes events on a RabbitMQ channel.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects to RabbitMQ and declares the booking queue.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		BookingCreatedQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

// PublishBookingCreated sends a persistent booking.created message.
func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.channel.PublishWithContext(ctx,
		"",                  // default exchange
		BookingCreatedQueue, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct{}

// PublishBookingCreated does nothing.
func (NoopPublisher) PublishBookingCreated(context.Context, BookingCreated) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
