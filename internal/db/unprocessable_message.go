package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/bridge-pool-service/internal/db/model"
)

func (db *Database) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	client := db.collection(model.UnprocessableMsgCollection)
	_, err := client.InsertOne(ctx, model.NewUnprocessableMessageDocument(messageBody, receipt))
	return err
}

// FindUnprocessableMessages returns every parked message, oldest first.
func (db *Database) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	client := db.collection(model.UnprocessableMsgCollection)
	cursor, err := client.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "parked_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unprocessableMessages []model.UnprocessableMessageDocument
	if err = cursor.All(ctx, &unprocessableMessages); err != nil {
		return nil, err
	}

	return unprocessableMessages, nil
}

func (db *Database) DeleteUnprocessableMessage(ctx context.Context, id primitive.ObjectID) error {
	client := db.collection(model.UnprocessableMsgCollection)
	_, err := client.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
