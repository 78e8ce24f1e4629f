package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveDeposit stores a deposit made on this side. It returns a
	// DuplicateKeyError if the deposit was already indexed.
	SaveDeposit(ctx context.Context, deposit *model.DepositDocument) error
	FindDepositByID(ctx context.Context, depositID uint64) (*model.DepositDocument, error)
	FindDepositsBySender(
		ctx context.Context, sender string, paginationToken string,
	) (*DbResultMap[model.DepositDocument], error)
	// SaveExecution stores an executed transfer and adds it to the relayer
	// stats in one transaction. It returns a DuplicateKeyError if the
	// execution was already indexed, in which case the stats are untouched.
	SaveExecution(ctx context.Context, execution *model.ExecutionDocument) error
	FindExecutionByDepositID(ctx context.Context, depositID uint64) (*model.ExecutionDocument, error)
	FindRelayerStats(ctx context.Context, relayer string) (*model.RelayerStatsDocument, error)
	SavePoolState(ctx context.Context, state *model.PoolStateDocument) error
	FindPoolState(ctx context.Context, side string) (*model.PoolStateDocument, error)
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, id primitive.ObjectID) error
}

type DBTransactionClient interface {
	StartSession(opts ...*options.SessionOptions) (DBSession, error)
}

type DBSession interface {
	EndSession(ctx context.Context)
	WithTransaction(
		ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error),
		opts ...*options.TransactionOptions,
	) (interface{}, error)
}
