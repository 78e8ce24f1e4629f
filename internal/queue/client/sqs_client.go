package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

const (
	sqsPingTimeout       = 5 * time.Second
	sqsReceiveErrorPause = time.Second
)

// SQSClient serves a queue from AWS SQS. The queue is looked up by name, so
// both sides only have to agree on the queue names.
type SQSClient struct {
	api       sqsiface.SQSAPI
	queueName string
	queueURL  string
	waitTime  int64

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

func NewSQSClient(cfg *config.QueueConfig, queueName string) (*SQSClient, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.SqsRegion)}
	if cfg.SqsEndpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.SqsEndpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	api := sqs.New(sess)

	ctx, cancel := context.WithTimeout(context.Background(), sqsPingTimeout)
	defer cancel()
	output, err := api.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve url of queue %s: %w", queueName, err)
	}

	return newSQSClient(api, queueName, aws.StringValue(output.QueueUrl), cfg.SqsWaitTimeSeconds), nil
}

func newSQSClient(api sqsiface.SQSAPI, queueName, queueURL string, waitTime int64) *SQSClient {
	ctx, cancel := context.WithCancel(context.Background())
	return &SQSClient{
		api:       api,
		queueName: queueName,
		queueURL:  queueURL,
		waitTime:  waitTime,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ReceiveMessages long polls the queue until Stop is called. A message that
// is not deleted becomes visible again once its visibility timeout expires.
func (c *SQSClient) ReceiveMessages() (<-chan QueueMessage, error) {
	output := make(chan QueueMessage)
	go func() {
		defer close(output)
		for {
			res, err := c.api.ReceiveMessageWithContext(c.ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            aws.String(c.queueURL),
				MaxNumberOfMessages: aws.Int64(1),
				WaitTimeSeconds:     aws.Int64(c.waitTime),
			})
			if c.ctx.Err() != nil {
				return
			}
			if err != nil {
				log.Error().Err(err).Str("queueName", c.queueName).Msg("failed to receive messages")
				if utils.Sleep(c.ctx, sqsReceiveErrorPause) != nil {
					return
				}
				continue
			}

			for _, m := range res.Messages {
				select {
				case output <- QueueMessage{
					Body:    aws.StringValue(m.Body),
					Receipt: aws.StringValue(m.ReceiptHandle),
				}:
				case <-c.ctx.Done():
					return
				}
			}
		}
	}()

	return output, nil
}

func (c *SQSClient) DeleteMessage(receipt string) error {
	_, err := c.api.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: aws.String(receipt),
	})
	return err
}

func (c *SQSClient) SendMessage(ctx context.Context, messageBody string) error {
	_, err := c.api.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(messageBody),
	})
	return err
}

func (c *SQSClient) Stop() error {
	c.stopOnce.Do(c.cancel)
	return nil
}

func (c *SQSClient) GetQueueName() string {
	return c.queueName
}

func (c *SQSClient) Ping() error {
	if c.ctx.Err() != nil {
		return fmt.Errorf("queue %s is stopped", c.queueName)
	}
	ctx, cancel := context.WithTimeout(c.ctx, sqsPingTimeout)
	defer cancel()
	_, err := c.api.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(c.queueURL),
		AttributeNames: []*string{aws.String(sqs.QueueAttributeNameQueueArn)},
	})
	if err != nil {
		return fmt.Errorf("queue %s is unreachable: %w", c.queueName, err)
	}
	return nil
}
