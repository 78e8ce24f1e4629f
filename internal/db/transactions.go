package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

const (
	DefaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	DefaultInitialBackoff = 100 * time.Millisecond
	DefaultBackoffFactor  = 2
)

type dbTransactionClient struct {
	*mongo.Client
}

type dbSessionWrapper struct {
	mongo.Session
}

func (c *dbTransactionClient) StartSession(opts ...*options.SessionOptions) (DBSession, error) {
	session, err := c.Client.StartSession(opts...)
	if err != nil {
		return nil, err
	}
	return &dbSessionWrapper{session}, nil
}

func (s *dbSessionWrapper) EndSession(ctx context.Context) {
	s.Session.EndSession(ctx)
}

func (s *dbSessionWrapper) WithTransaction(
	ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error),
	opts ...*options.TransactionOptions,
) (interface{}, error) {
	return s.Session.WithTransaction(ctx, fn, opts...)
}

// TxWithRetries runs txnFunc in a transaction, retrying transient failures
// with exponential backoff.
func TxWithRetries(
	ctx context.Context,
	dbTransactionClient DBTransactionClient,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var (
		result  interface{}
		err     error
		backoff = DefaultInitialBackoff
	)

	for attempt := 1; attempt <= DefaultMaxAttempts; attempt++ {
		session, sessionErr := dbTransactionClient.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err == nil {
			return result, nil
		}
		if !shouldRetry(err) || attempt == DefaultMaxAttempts {
			log.Ctx(ctx).Debug().Err(err).Int("attempt", attempt).Msg("transaction failed")
			return nil, err
		}
		log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).
			Dur("backoff", backoff).Msg("transaction failed with retryable error")
		if sleepErr := utils.Sleep(ctx, backoff); sleepErr != nil {
			return nil, errors.Join(err, sleepErr)
		}
		backoff *= DefaultBackoffFactor
	}
	return nil, err
}

// Network errors, timeouts, write conflicts and aborted transactions are
// transient. Everything else, duplicated keys included, is not retried.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}
	if IsWriteConflictError(err) {
		return true
	}
	if IsTransactionAbortedError(err) {
		return true
	}
	return false
}
