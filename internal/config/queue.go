package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	ClassicQueueType = "classic"
	QuorumQueueType  = "quorum"

	RabbitMqProvider = "rabbitmq"
	SqsProvider      = "sqs"

	defaultSqsWaitTimeSeconds = 20
)

type QueueConfig struct {
	Provider               string        `mapstructure:"provider"`
	QueueUser              string        `mapstructure:"queue_user"`
	QueuePassword          string        `mapstructure:"queue_password"`
	Url                    string        `mapstructure:"url"`
	QueueProcessingTimeout time.Duration `mapstructure:"processing_timeout"`
	QueueType              string        `mapstructure:"queue_type"`
	// SQS only
	SqsRegion          string `mapstructure:"sqs_region"`
	SqsEndpoint        string `mapstructure:"sqs_endpoint"`
	SqsWaitTimeSeconds int64  `mapstructure:"sqs_wait_time_seconds"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("invalid queue processing timeout")
	}

	if cfg.Provider == "" {
		cfg.Provider = RabbitMqProvider
	}
	switch cfg.Provider {
	case RabbitMqProvider:
		return cfg.validateRabbitMq()
	case SqsProvider:
		return cfg.validateSqs()
	default:
		return fmt.Errorf("unsupported queue provider: %s", cfg.Provider)
	}
}

func (cfg *QueueConfig) validateRabbitMq() error {
	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.QueueType == "" {
		cfg.QueueType = QuorumQueueType
	}
	if !slices.Contains([]string{ClassicQueueType, QuorumQueueType}, cfg.QueueType) {
		return fmt.Errorf("unsupported queue type: %s", cfg.QueueType)
	}

	return nil
}

func (cfg *QueueConfig) validateSqs() error {
	if cfg.SqsRegion == "" {
		return fmt.Errorf("missing sqs region")
	}

	if cfg.SqsWaitTimeSeconds == 0 {
		cfg.SqsWaitTimeSeconds = defaultSqsWaitTimeSeconds
	}
	// long polling is capped at 20 seconds by SQS
	if cfg.SqsWaitTimeSeconds < 0 || cfg.SqsWaitTimeSeconds > 20 {
		return fmt.Errorf("sqs wait time must be between 1 and 20 seconds")
	}

	return nil
}
