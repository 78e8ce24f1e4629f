package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
)

// EmitDepositEvent publishes a deposit of this side to the indexer and to
// the relayer of the remote side.
func (q *Queues) EmitDepositEvent(ctx context.Context, ev *client.DepositEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal deposit event: %w", err)
	}
	if err := q.DepositQueueClient.SendMessage(ctx, string(body)); err != nil {
		return fmt.Errorf("failed to publish deposit %d to %s: %w", ev.DepositID, q.DepositQueueClient.GetQueueName(), err)
	}
	if err := q.RelayQueueClient.SendMessage(ctx, string(body)); err != nil {
		return fmt.Errorf("failed to publish deposit %d to %s: %w", ev.DepositID, q.RelayQueueClient.GetQueueName(), err)
	}
	return nil
}

func (q *Queues) EmitExecuteBridgeEvent(ctx context.Context, ev *client.ExecuteBridgeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal execute bridge event: %w", err)
	}
	if err := q.ExecutionQueueClient.SendMessage(ctx, string(body)); err != nil {
		return fmt.Errorf("failed to publish execution of deposit %d: %w", ev.DepositID, err)
	}
	return nil
}
