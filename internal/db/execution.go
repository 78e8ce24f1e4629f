package db

import (
	"context"
	"errors"
	"strconv"

	"github.com/holiman/uint256"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/db/model"
)

func (db *Database) SaveExecution(ctx context.Context, execution *model.ExecutionDocument) error {
	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		executionClient := db.collection(model.ExecutionCollection)
		statsClient := db.collection(model.RelayerStatsCollection)

		// The execution insert doubles as the idempotence guard for the stats
		if _, err := executionClient.InsertOne(sessCtx, execution); err != nil {
			if isDuplicateKeyWriteErr(err) {
				return nil, &DuplicateKeyError{
					Key:     strconv.FormatUint(execution.DepositID, 10),
					Message: "Execution already exists",
				}
			}
			return nil, err
		}

		stats := model.RelayerStatsDocument{
			Relayer:     execution.Relayer,
			TotalVolume: "0",
			TotalFees:   "0",
		}
		err := statsClient.FindOne(sessCtx, bson.M{"_id": execution.Relayer}).Decode(&stats)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		volume, err := addDecimal(stats.TotalVolume, execution.Amount)
		if err != nil {
			return nil, err
		}
		fees, err := addDecimal(stats.TotalFees, execution.Fee)
		if err != nil {
			return nil, err
		}
		stats.Executions++
		stats.TotalVolume = volume
		stats.TotalFees = fees
		if execution.Timestamp > stats.LastExecutedAt {
			stats.LastExecutedAt = execution.Timestamp
		}

		_, err = statsClient.ReplaceOne(
			sessCtx, bson.M{"_id": execution.Relayer}, stats, options.Replace().SetUpsert(true),
		)
		if err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, txErr := db.txWithRetries(ctx, transactionWork)
	return txErr
}

func (db *Database) FindExecutionByDepositID(ctx context.Context, depositID uint64) (*model.ExecutionDocument, error) {
	client := db.collection(model.ExecutionCollection)
	var execution model.ExecutionDocument
	err := client.FindOne(ctx, bson.M{"_id": depositID}).Decode(&execution)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     strconv.FormatUint(depositID, 10),
				Message: "Execution not found",
			}
		}
		return nil, err
	}
	return &execution, nil
}

func (db *Database) FindRelayerStats(ctx context.Context, relayer string) (*model.RelayerStatsDocument, error) {
	client := db.collection(model.RelayerStatsCollection)
	var stats model.RelayerStatsDocument
	err := client.FindOne(ctx, bson.M{"_id": relayer}).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     relayer,
				Message: "Relayer stats not found",
			}
		}
		return nil, err
	}
	return &stats, nil
}

func addDecimal(a, b string) (string, error) {
	x, err := uint256.FromDecimal(a)
	if err != nil {
		return "", err
	}
	y, err := uint256.FromDecimal(b)
	if err != nil {
		return "", err
	}
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return "", errors.New("decimal sum overflows 256 bits")
	}
	return sum.Dec(), nil
}
