package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/hqvuong/microshop/shared/logs"
	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ is a thin client over a single connection and channel. Exchanges
// are fanout: every bound queue gets a copy of each published message.
type RabbitMQ struct {
	logger     logs.Logger
	connection *amqp091.Connection
	channel    *amqp091.Channel
}

func NewConnection(logger logs.Logger, url string) (*RabbitMQ, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	logger.Info("connected to RabbitMQ")
	return &RabbitMQ{
		logger:     logger,
		connection: conn,
		channel:    ch,
	}, nil
}

func (r *RabbitMQ) Publish(ctx context.Context, exchange string, body []byte) error {
	if err := r.channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
		Timestamp:    time.Now(),
	}

	return r.channel.PublishWithContext(ctx, exchange, "", false, false, publishing)
}

func (r *RabbitMQ) Subscribe(ctx context.Context, exchange, queueName, consumerTag string, handler func(d amqp091.Delivery)) error {
	if err := r.channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}

	q, err := r.channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	if err := r.channel.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return err
	}

	msgs, err := r.channel.Consume(q.Name, consumerTag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	r.logger.Info("consumer subscribed", "consumerTag", consumerTag, "queue", q.Name)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("context cancelled, stopping consumer", "consumerTag", consumerTag)
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitmq channel closed for consumer %s", consumerTag)
			}
			go handler(d)
		}
	}
}

func (r *RabbitMQ) Ping() error {
	if r.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}
	return nil
}

func (r *RabbitMQ) Close() {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.connection != nil {
		r.connection.Close()
	}
	r.logger.Info("rabbitmq connection closed")
}
