package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher is the RabbitMQ backed notification.Sink.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var _ notification.Sink = (*Publisher)(nil)

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) NewOrder(ctx context.Context, buyerID uint64) error {
	return p.publish(ctx, notification.Event{
		Type:       constant.EventNewOrder,
		AccountID:  buyerID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) AccountRegistered(ctx context.Context, accountID uint64) error {
	return p.publish(ctx, notification.Event{
		Type:       constant.EventAccountRegistered,
		AccountID:  accountID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		exchangeName,       // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
