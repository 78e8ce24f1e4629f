package client

import (
	"context"
	"fmt"

	"github.com/babylonchain/bridge-pool-service/internal/config"
)

type QueueMessage struct {
	Body    string
	Receipt string
}

// QueueClient is the transport used by the service, independent of the
// broker behind it.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	Stop() error
	GetQueueName() string
	Ping() error
}

func NewQueueClient(cfg *config.QueueConfig, queueName string) (QueueClient, error) {
	switch cfg.Provider {
	case config.SqsProvider:
		return NewSQSClient(cfg, queueName)
	case config.RabbitMqProvider, "":
		return NewRabbitMqClient(cfg, queueName)
	default:
		return nil, fmt.Errorf("unsupported queue provider: %s", cfg.Provider)
	}
}
