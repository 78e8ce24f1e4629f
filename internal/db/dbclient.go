package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/config"
)

type Database struct {
	DbName string
	Client *mongo.Client
	cfg    config.DbConfig
}

type DbResultMap[T any] struct {
	Data            []T    `json:"data"`
	PaginationToken string `json:"paginationToken"`
}

func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	clientOps := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	return &Database{
		DbName: cfg.DbName,
		Client: client,
		cfg:    cfg,
	}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DbName).Collection(name)
}

func (db *Database) txWithRetries(
	ctx context.Context, txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	return TxWithRetries(ctx, &dbTransactionClient{db.Client}, txnFunc)
}

// toResultMapWithPaginationToken attaches a pagination token when the page is
// full, meaning there may be more results to fetch.
func toResultMapWithPaginationToken[T any](
	limit int64, result []T, paginationKeyBuilder func(T) (string, error),
) (*DbResultMap[T], error) {
	if len(result) > 0 && int64(len(result)) == limit {
		paginationToken, err := paginationKeyBuilder(result[len(result)-1])
		if err != nil {
			return nil, err
		}
		return &DbResultMap[T]{
			Data:            result,
			PaginationToken: paginationToken,
		}, nil
	}

	return &DbResultMap[T]{
		Data:            result,
		PaginationToken: "",
	}, nil
}
