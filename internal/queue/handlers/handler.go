package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/services"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type QueueHandler struct {
	Services *services.Services
}

type MessageHandler func(ctx context.Context, messageBody string) *types.Error

func NewQueueHandler(services *services.Services) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}

func unexpectedEventType(eventType client.EventType) *types.Error {
	return types.NewErrorWithMsg(
		http.StatusBadRequest, types.BadRequest, fmt.Sprintf("unexpected event type: %d", eventType),
	)
}
