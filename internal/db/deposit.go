package db

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/db/model"
)

func (db *Database) SaveDeposit(ctx context.Context, deposit *model.DepositDocument) error {
	client := db.collection(model.DepositCollection)
	_, err := client.InsertOne(ctx, deposit)
	if err != nil {
		if isDuplicateKeyWriteErr(err) {
			return &DuplicateKeyError{
				Key:     strconv.FormatUint(deposit.DepositID, 10),
				Message: "Deposit already exists",
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindDepositByID(ctx context.Context, depositID uint64) (*model.DepositDocument, error) {
	client := db.collection(model.DepositCollection)
	var deposit model.DepositDocument
	err := client.FindOne(ctx, bson.M{"_id": depositID}).Decode(&deposit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     strconv.FormatUint(depositID, 10),
				Message: "Deposit not found",
			}
		}
		return nil, err
	}
	return &deposit, nil
}

// FindDepositsBySender returns the sender's deposits, newest first.
func (db *Database) FindDepositsBySender(
	ctx context.Context, sender string, paginationToken string,
) (*DbResultMap[model.DepositDocument], error) {
	client := db.collection(model.DepositCollection)

	filter := bson.M{"sender": sender}
	options := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	options.SetLimit(db.cfg.MaxPaginationLimit)

	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.DepositsBySenderPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter["_id"] = bson.M{"$lt": decodedToken.DepositID}
	}

	cursor, err := client.Find(ctx, filter, options)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deposits []model.DepositDocument
	if err = cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(
		db.cfg.MaxPaginationLimit, deposits, model.BuildDepositsBySenderPaginationToken,
	)
}
