package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

// DepositHandler indexes the deposits made on this side.
// Duplicated messages are ignored.
func (h *QueueHandler) DepositHandler(ctx context.Context, messageBody string) *types.Error {
	var depositEvent client.DepositEvent
	err := json.Unmarshal([]byte(messageBody), &depositEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into DepositEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}
	if depositEvent.EventType != client.DepositEventType {
		return unexpectedEventType(depositEvent.EventType)
	}

	saveErr := h.Services.SaveDeposit(ctx, &depositEvent)
	if saveErr != nil {
		log.Ctx(ctx).Error().Err(saveErr).Uint64("depositId", depositEvent.DepositID).Msg("Failed to save deposit")
		return saveErr
	}
	return nil
}

// RelayHandler executes the deposits made on the remote side.
// Deposits that were already executed are acknowledged.
func (h *QueueHandler) RelayHandler(ctx context.Context, messageBody string) *types.Error {
	var depositEvent client.DepositEvent
	err := json.Unmarshal([]byte(messageBody), &depositEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into DepositEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}
	if depositEvent.EventType != client.DepositEventType {
		return unexpectedEventType(depositEvent.EventType)
	}

	relayErr := h.Services.RelayDeposit(ctx, &depositEvent)
	if relayErr != nil {
		log.Ctx(ctx).Error().Err(relayErr).Uint64("depositId", depositEvent.DepositID).Msg("Failed to relay deposit")
		return relayErr
	}
	return nil
}
