// Package rabbitmq publishes domain events to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"encoding/json"
	"eventHub/internal/queue"
	"fmt"
	amqp "github.com/rabbitmq/amqp091-go"
	"sync"
	"time"
)

type Publisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// New dials the broker and declares the queue. The queue is durable so
// messages survive broker restarts.
func New(url, queueName string) (*Publisher, error) {
	const op = "queue.rabbitmq.New"

	p := &Publisher{url: url, queue: queueName}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("channel open failed: %w", err)
	}

	if _, err = ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("queue declare failed: %w", err)
	}

	p.conn = conn
	p.ch = ch

	return nil
}

// PublishPurchaseCompleted sends ev as a persistent JSON message, redialing
// once if the connection was lost.
func (p *Publisher) PublishPurchaseCompleted(ctx context.Context, ev queue.PurchaseCompletedEvent) error {
	const op = "queue.rabbitmq.PublishPurchaseCompleted"

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: marshal event failed: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err = p.connect(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         "purchase.completed",
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: publish failed: %w", op, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeLocked()
}

func (p *Publisher) closeLocked() error {
	var err error

	if p.ch != nil {
		err = p.ch.Close()
		p.ch = nil
	}

	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
		p.conn = nil
	}

	return err
}
