package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
)

type genericEvent struct {
	EventType client.EventType `json:"event_type"`
	Side      string           `json:"side"`
}

// ReplayMessage sends a stored message back to the queue it is consumed
// from. Local deposits go to both the indexer and the relay queue, their
// consumers ignore duplicates.
func (q *Queues) ReplayMessage(ctx context.Context, messageBody string) error {
	var event genericEvent
	if err := json.Unmarshal([]byte(messageBody), &event); err != nil {
		return fmt.Errorf("failed to unmarshal event message: %w", err)
	}

	switch event.EventType {
	case client.DepositEventType:
		switch {
		case event.Side == q.side:
			if err := q.DepositQueueClient.SendMessage(ctx, messageBody); err != nil {
				return err
			}
			return q.RelayQueueClient.SendMessage(ctx, messageBody)
		case q.RemoteRelayQueueClient != nil && event.Side == q.remoteSide:
			return q.RemoteRelayQueueClient.SendMessage(ctx, messageBody)
		default:
			return fmt.Errorf("no queue for deposits of side %q", event.Side)
		}
	case client.ExecuteBridgeEventType:
		return q.ExecutionQueueClient.SendMessage(ctx, messageBody)
	default:
		return fmt.Errorf("unknown event type: %v", event.EventType)
	}
}
