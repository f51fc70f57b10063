package rabbitmq

import (
	"fmt"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "marketplace_notification_exchange"
	queueName    = "marketplace_notification_queue"
)

var routingKeys = []string{
	string(constant.EventNewOrder),
	string(constant.EventAccountRegistered),
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology is shared by publisher and consumer so either may start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // auto-delete
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return err
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(queueName, key, exchangeName, false, nil); err != nil {
			return err
		}
	}
	return nil
}
