package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rabbitmq/amqp091-go"

	"github.com/babylonchain/bridge-pool-service/internal/config"
)

type RabbitMqClient struct {
	connection *amqp091.Connection
	channel    *amqp091.Channel
	queueName  string

	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewRabbitMqClient(cfg *config.QueueConfig, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)

	conn, err := amqp091.Dial(amqpURI)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // nolint:errcheck
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-deleted
		false, // exclusive
		false, // no-wait
		amqp091.Table{"x-queue-type": cfg.QueueType},
	)
	if err != nil {
		ch.Close()   // nolint:errcheck
		conn.Close() // nolint:errcheck
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		stopCh:     make(chan struct{}),
	}, nil
}

// ReceiveMessages consumes the queue one unacknowledged message at a time.
// Every message must be removed with DeleteMessage once handled.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set qos on queue %s: %w", c.queueName, err)
	}

	deliveries, err := c.channel.Consume(
		c.queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}

	output := make(chan QueueMessage)
	go func() {
		defer close(output)
		for {
			select {
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case output <- QueueMessage{
					Body:    string(d.Body),
					Receipt: strconv.FormatUint(d.DeliveryTag, 10),
				}:
				case <-c.stopCh:
					return
				}
			case <-c.stopCh:
				return
			}
		}
	}()

	return output, nil
}

func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	deliveryTag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid receipt %q: %w", receipt, err)
	}
	return c.channel.Ack(deliveryTag, false)
}

func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	return c.channel.PublishWithContext(
		ctx,
		"",          // default exchange
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp091.Publishing{
			DeliveryMode: amqp091.Persistent,
			ContentType:  "application/json",
			Body:         []byte(messageBody),
		},
	)
}

func (c *RabbitMqClient) Stop() error {
	var err error
	c.stopOnce.Do(func() {
		close(c.stopCh)
		err = errors.Join(c.channel.Close(), c.connection.Close())
	})
	return err
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}

func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return fmt.Errorf("connection of queue %s is closed", c.queueName)
	}
	if c.channel.IsClosed() {
		return fmt.Errorf("channel of queue %s is closed", c.queueName)
	}
	return nil
}
