package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/pool"
	"github.com/babylonchain/bridge-pool-service/internal/token"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

func mapPoolError(ctx context.Context, operation string, err error) *types.Error {
	switch {
	case errors.Is(err, pool.ErrAlreadyExecuted):
		return types.NewError(http.StatusConflict, types.Conflict, err)
	case errors.Is(err, pool.ErrStakeLocked):
		return types.NewError(http.StatusForbidden, types.Forbidden, err)
	case errors.Is(err, pool.ErrDepositNotFound):
		return types.NewError(http.StatusNotFound, types.NotFound, err)
	case errors.Is(err, pool.ErrTransferFailed),
		errors.Is(err, token.ErrInsufficientBalance),
		errors.Is(err, token.ErrInsufficientAllowance):
		return types.NewError(http.StatusUnprocessableEntity, types.TransferFailed, err)
	case errors.Is(err, pool.ErrInsufficientStakeAmount),
		errors.Is(err, pool.ErrInsufficientStake),
		errors.Is(err, pool.ErrAmountExceedsStakeCap),
		errors.Is(err, pool.ErrTargetNotStaked),
		errors.Is(err, pool.ErrZeroAmount),
		errors.Is(err, pool.ErrInvalidReceiver),
		errors.Is(err, pool.ErrInvalidCaller),
		errors.Is(err, pool.ErrOverflow),
		errors.Is(err, token.ErrInvalidAddress),
		errors.Is(err, token.ErrOverflow):
		return types.NewError(http.StatusBadRequest, types.ValidationError, err)
	default:
		log.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("unexpected error from pool")
		return types.NewInternalServiceError(err)
	}
}
