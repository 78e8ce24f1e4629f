package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/db/model"
)

// SavePoolState replaces the persisted state of the side.
func (db *Database) SavePoolState(ctx context.Context, state *model.PoolStateDocument) error {
	client := db.collection(model.PoolStateCollection)
	_, err := client.ReplaceOne(ctx, bson.M{"_id": state.Side}, state, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) FindPoolState(ctx context.Context, side string) (*model.PoolStateDocument, error) {
	client := db.collection(model.PoolStateCollection)
	var state model.PoolStateDocument
	err := client.FindOne(ctx, bson.M{"_id": side}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     side,
				Message: "Pool state not found",
			}
		}
		return nil, err
	}
	return &state, nil
}
