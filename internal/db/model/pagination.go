package model

import (
	"encoding/base64"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// EncodePaginationToken turns the position of the last returned document
// into an opaque, url safe token.
func EncodePaginationToken[T any](position T) (string, error) {
	raw, err := bson.Marshal(position)
	if err != nil {
		return "", fmt.Errorf("failed to encode pagination token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func DecodePaginationToken[T any](token string) (*T, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var position T
	if err := bson.Unmarshal(raw, &position); err != nil {
		return nil, err
	}
	return &position, nil
}
