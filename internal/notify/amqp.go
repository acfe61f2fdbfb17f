package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes access codes to a RabbitMQ queue consumed by an
// external SMS gateway. Messages are durable JSON payloads.
type AMQPNotifier struct {
	conn  *amqp.Connection
	chn   *amqp.Channel
	queue string
}

type smsMessage struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// NewAMQPNotifier dials the broker, opens a channel, and declares the
// durable queue the gateway reads from.
func NewAMQPNotifier(url, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to broker: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening channel: %w", err)
	}

	_, err = chn.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		chn.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring queue: %w", err)
	}

	return &AMQPNotifier{conn: conn, chn: chn, queue: queue}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(smsMessage{Phone: phone, Code: code})
	if err != nil {
		return err
	}

	return n.chn.PublishWithContext(ctx,
		"",      // exchange
		n.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

// Close shuts down the channel and connection.
func (n *AMQPNotifier) Close() error {
	if err := n.chn.Close(); err != nil {
		return err
	}
	return n.conn.Close()
}
