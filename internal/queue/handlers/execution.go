package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

func (h *QueueHandler) ExecutionHandler(ctx context.Context, messageBody string) *types.Error {
	var executeEvent client.ExecuteBridgeEvent
	err := json.Unmarshal([]byte(messageBody), &executeEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into ExecuteBridgeEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}
	if executeEvent.EventType != client.ExecuteBridgeEventType {
		return unexpectedEventType(executeEvent.EventType)
	}

	saveErr := h.Services.SaveExecution(ctx, &executeEvent)
	if saveErr != nil {
		log.Error().Err(saveErr).Msg("Failed to save bridge execution")
		return saveErr
	}
	return nil
}
