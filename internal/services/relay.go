package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/types"
	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

// RelayDeposit executes a deposit observed on the remote side with the
// configured relayer account. A deposit that was already executed is
// acknowledged without error.
func (s *Services) RelayDeposit(ctx context.Context, ev *client.DepositEvent) *types.Error {
	relayer := s.cfg.Relayer
	if !relayer.Enabled {
		return types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "relayer is disabled")
	}
	if ev.Side != relayer.RemoteSide {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest,
			fmt.Sprintf("deposit from side %q cannot be relayed, expected %q", ev.Side, relayer.RemoteSide),
		)
	}
	receiver, err := utils.ParseAddress(ev.Receiver)
	if err != nil {
		return types.NewError(http.StatusBadRequest, types.BadRequest, fmt.Errorf("invalid receiver: %w", err))
	}
	amount, err := utils.ParseAmount(ev.Amount)
	if err != nil {
		return types.NewError(http.StatusBadRequest, types.BadRequest, fmt.Errorf("invalid amount: %w", err))
	}

	result, execErr := s.ExecuteBridge(ctx, relayer.RelayerAddress, ev.DepositID, receiver, amount)
	if execErr != nil {
		if types.HasErrorCode(execErr, types.Conflict) {
			log.Ctx(ctx).Info().Uint64("depositId", ev.DepositID).Msg("deposit already executed, skipping")
			return nil
		}
		return execErr
	}
	log.Ctx(ctx).Info().Uint64("depositId", ev.DepositID).
		Str("receiver", result.Receiver).
		Str("payout", result.Payout).
		Str("fee", result.Fee).
		Msg("remote deposit relayed")
	return nil
}
