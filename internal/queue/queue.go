package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/observability/metrics"
	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/queue/handlers"
	"github.com/babylonchain/bridge-pool-service/internal/services"
)

type Queues struct {
	side       string
	remoteSide string

	// DepositQueueClient carries this side's deposits to the indexer.
	DepositQueueClient client.QueueClient
	// RelayQueueClient carries this side's deposits to the remote relayer.
	RelayQueueClient     client.QueueClient
	ExecutionQueueClient client.QueueClient
	// RemoteRelayQueueClient is only set when the relayer is enabled.
	RemoteRelayQueueClient client.QueueClient

	Handlers          *handlers.QueueHandler
	processingTimeout time.Duration
}

func New(cfg *config.Config) (*Queues, error) {
	side := cfg.Pool.Side
	depositQueueClient, err := client.NewQueueClient(&cfg.Queue, client.DepositQueueName(side))
	if err != nil {
		return nil, fmt.Errorf("error while creating DepositQueueClient: %w", err)
	}
	relayQueueClient, err := client.NewQueueClient(&cfg.Queue, client.RelayQueueName(side))
	if err != nil {
		return nil, fmt.Errorf("error while creating RelayQueueClient: %w", err)
	}
	executionQueueClient, err := client.NewQueueClient(&cfg.Queue, client.ExecutionQueueName(side))
	if err != nil {
		return nil, fmt.Errorf("error while creating ExecutionQueueClient: %w", err)
	}

	q := &Queues{
		side:                 side,
		DepositQueueClient:   depositQueueClient,
		RelayQueueClient:     relayQueueClient,
		ExecutionQueueClient: executionQueueClient,
		processingTimeout:    cfg.Queue.QueueProcessingTimeout,
	}
	if cfg.Relayer.Enabled {
		remoteRelayQueueClient, err := client.NewQueueClient(&cfg.Queue, client.RelayQueueName(cfg.Relayer.RemoteSide))
		if err != nil {
			return nil, fmt.Errorf("error while creating RemoteRelayQueueClient: %w", err)
		}
		q.remoteSide = cfg.Relayer.RemoteSide
		q.RemoteRelayQueueClient = remoteRelayQueueClient
	}
	return q, nil
}

// Start all message processing
func (q *Queues) StartReceivingMessages(service *services.Services) error {
	q.Handlers = handlers.NewQueueHandler(service)

	if err := startQueueMessageProcessing(
		q.DepositQueueClient, q.Handlers.DepositHandler, service, log.Logger, q.processingTimeout,
	); err != nil {
		return err
	}
	if err := startQueueMessageProcessing(
		q.ExecutionQueueClient, q.Handlers.ExecutionHandler, service, log.Logger, q.processingTimeout,
	); err != nil {
		return err
	}
	if q.RemoteRelayQueueClient != nil {
		if err := startQueueMessageProcessing(
			q.RemoteRelayQueueClient, q.Handlers.RelayHandler, service, log.Logger, q.processingTimeout,
		); err != nil {
			return err
		}
	}
	return nil
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	for _, c := range q.clients() {
		if err := c.Stop(); err != nil {
			log.Error().Err(err).Str("queueName", c.GetQueueName()).Msg("error while stopping queue client")
		}
	}
}

// IsConnectionHealthy checks if all the queue connections are healthy.
func (q *Queues) IsConnectionHealthy() error {
	var errorMessages []error
	for _, c := range q.clients() {
		if err := c.Ping(); err != nil {
			errorMessages = append(errorMessages, fmt.Errorf("queue %s is not healthy: %w", c.GetQueueName(), err))
		}
	}
	return errors.Join(errorMessages...)
}

func (q *Queues) clients() []client.QueueClient {
	clients := []client.QueueClient{q.DepositQueueClient, q.RelayQueueClient, q.ExecutionQueueClient}
	if q.RemoteRelayQueueClient != nil {
		clients = append(clients, q.RemoteRelayQueueClient)
	}
	return clients
}

// unprocessableMessageSaver keeps messages that failed processing for a later
// replay.
type unprocessableMessageSaver interface {
	SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error
}

func startQueueMessageProcessing(
	queueClient client.QueueClient, handler handlers.MessageHandler,
	saver unprocessableMessageSaver, logger zerolog.Logger, timeout time.Duration,
) error {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
		return err
	}

	go func() {
		for message := range messagesChan {
			processMessage(queueClient, handler, saver, logger, timeout, message)
		}
	}()
	return nil
}

func processMessage(
	queueClient client.QueueClient, handler handlers.MessageHandler,
	saver unprocessableMessageSaver, logger zerolog.Logger, timeout time.Duration,
	message client.QueueMessage,
) {
	queueName := queueClient.GetQueueName()
	// For each message, create a new context with a deadline or timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logger.With().Str("queueName", queueName).Str("receipt", message.Receipt).Logger().WithContext(ctx)

	done := metrics.StartQueueMessageTimer(queueName)
	if handlerErr := handler(ctx, message.Body); handlerErr != nil {
		done(handlerErr)
		logger.Error().Err(handlerErr).Str("queueName", queueName).Msg("error while processing message from queue")
		// the message is only acked once it is safely stored
		if saveErr := saver.SaveUnprocessableMessages(ctx, message.Body, message.Receipt); saveErr != nil {
			logger.Error().Err(saveErr).Str("queueName", queueName).Msg("error while saving unprocessable message")
			return
		}
	} else {
		done(nil)
	}

	if delErr := queueClient.DeleteMessage(message.Receipt); delErr != nil {
		logger.Error().Err(delErr).Str("queueName", queueName).Msg("error while deleting message from queue")
	}
}
