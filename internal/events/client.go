// Package events publishes document change events to a RabbitMQ
// exchange. Publishing is fire-and-forget from the tracker's point of
// view: a broker outage never blocks or fails a mutation.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	routingKey   string
}

func NewClient(url, exchangeName, routingKey string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		routingKey:   routingKey,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	return nil
}

func (c *Client) publish(ctx context.Context, msg *ChangeMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,              // exchange
		c.routingKey+"."+msg.Event,  // routing key
		false,                       // mandatory
		false,                       // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "Published change event",
		"event", msg.Event,
		"exchange", c.exchangeName)
	return nil
}

func (c *Client) PublishExpenseCreated(ctx context.Context, id int64) error {
	return c.publish(ctx, NewChangeMessage(EventExpenseCreated, id, ""))
}

func (c *Client) PublishExpenseDeleted(ctx context.Context, id int64) error {
	return c.publish(ctx, NewChangeMessage(EventExpenseDeleted, id, ""))
}

func (c *Client) PublishCategoryAdded(ctx context.Context, name string) error {
	return c.publish(ctx, NewChangeMessage(EventCategoryAdded, 0, name))
}

func (c *Client) PublishCategoryDeleted(ctx context.Context, name string) error {
	return c.publish(ctx, NewChangeMessage(EventCategoryDeleted, 0, name))
}

func (c *Client) PublishIncomeUpdated(ctx context.Context, cents int64) error {
	return c.publish(ctx, NewChangeMessage(EventIncomeUpdated, cents, ""))
}

func (c *Client) Close() error {
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			firstErr = fmt.Errorf("close channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close connection: %w", err)
		}
	}
	return firstErr
}
