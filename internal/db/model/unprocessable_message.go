package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UnprocessableMsgCollection = "unprocessable_messages"

// UnprocessableMessageDocument is a queue message parked for a later replay.
// Receipts are only unique per consumer channel, the document id is what
// identifies a parked message.
type UnprocessableMessageDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	MessageBody string             `bson:"message_body"`
	Receipt     string             `bson:"receipt"`
	ParkedAt    int64              `bson:"parked_at"`
}

func NewUnprocessableMessageDocument(messageBody, receipt string) *UnprocessableMessageDocument {
	return &UnprocessableMessageDocument{
		MessageBody: messageBody,
		Receipt:     receipt,
		ParkedAt:    time.Now().Unix(),
	}
}
