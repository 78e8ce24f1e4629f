package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/pool"
	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
)

// publishReceiptPrefix marks unprocessable messages that never reached the
// queue, as opposed to consumed messages that could not be handled.
const publishReceiptPrefix = "publish-"

func (s *Services) publishEvents(ctx context.Context, events []pool.Event) {
	side := s.cfg.Pool.Side
	for _, e := range events {
		switch ev := e.(type) {
		case pool.DepositEvent:
			msg := client.NewDepositEvent(
				side, ev.DepositID, ev.Sender.Hex(), ev.Receiver.Hex(), ev.Amount.Dec(), ev.Timestamp.Unix(),
			)
			if err := s.emitter.EmitDepositEvent(ctx, &msg); err != nil {
				s.parkEvent(ctx, msg, err)
			}
		case pool.ExecuteBridgeEvent:
			msg := client.NewExecuteBridgeEvent(
				side, ev.DepositID, ev.Relayer.Hex(), ev.Receiver.Hex(),
				ev.Amount.Dec(), ev.Payout.Dec(), ev.Fee.Dec(),
				ev.LockedUntil.Unix(), ev.Timestamp.Unix(),
			)
			if err := s.emitter.EmitExecuteBridgeEvent(ctx, &msg); err != nil {
				s.parkEvent(ctx, msg, err)
			}
		default:
			log.Ctx(ctx).Debug().Str("event", e.Type().ToString()).Msg("pool event not published")
		}
	}
}

// parkEvent keeps an event that could not be published so that it can be
// replayed later.
func (s *Services) parkEvent(ctx context.Context, msg client.EventMessage, cause error) {
	log.Ctx(ctx).Error().Err(cause).Int("eventType", int(msg.GetEventType())).
		Msg("error while publishing event, saving it as unprocessable")
	body, err := json.Marshal(msg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while encoding event")
		return
	}
	// the error is already logged by SaveUnprocessableMessages
	_ = s.SaveUnprocessableMessages(ctx, string(body), publishReceiptPrefix+uuid.NewString())
}
