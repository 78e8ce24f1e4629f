package scripts

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/db"
)

// MessageReplayer sends a stored message back to its queue.
type MessageReplayer interface {
	ReplayMessage(ctx context.Context, messageBody string) error
}

func ReplayUnprocessableMessages(ctx context.Context, queues MessageReplayer, db db.DBClient) error {
	unprocessableMessages, err := db.FindUnprocessableMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve unprocessable messages: %w", err)
	}

	messageCount := len(unprocessableMessages)
	log.Info().Int("count", messageCount).Msg("unprocessable messages found")
	if messageCount == 0 {
		return errors.New("no unprocessable messages to replay")
	}

	for _, msg := range unprocessableMessages {
		if err := queues.ReplayMessage(ctx, msg.MessageBody); err != nil {
			return fmt.Errorf("failed to replay message %s: %w", msg.Receipt, err)
		}

		// Delete the processed message from the database
		if err := db.DeleteUnprocessableMessage(ctx, msg.ID); err != nil {
			return fmt.Errorf("failed to delete unprocessable message %s: %w", msg.Receipt, err)
		}
	}

	log.Info().Msg("Reprocessing of unprocessable messages completed.")
	return nil
}
