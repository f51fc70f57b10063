package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(host string, port int, user, password string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel}, nil
}

// Start consumes notification events until ctx is done or the channel closes.
// Handler failures are nacked with requeue; undecodable messages are dropped.
func (c *Consumer) Start(ctx context.Context, handler notification.Handler) error {
	// process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.dispatch(ctx, handler, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) dispatch(ctx context.Context, handler notification.Handler, msg amqp091.Delivery) {
	var event notification.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] unmarshal event", zap.Error(err), zap.String("routing_key", msg.RoutingKey))
		_ = msg.Ack(false)
		return
	}

	if err := handler.Handle(ctx, event); err != nil {
		logger.Error("[Consumer] handle event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.Uint64("account_id", event.AccountID))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] event delivered",
		zap.String("type", string(event.Type)),
		zap.Uint64("account_id", event.AccountID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
