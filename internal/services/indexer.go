package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/db/model"
	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type RelayerStatsPublic struct {
	Relayer        string `json:"relayer"`
	Executions     uint64 `json:"executions"`
	TotalVolume    string `json:"total_volume"`
	TotalFees      string `json:"total_fees"`
	LastExecutedAt int64  `json:"last_executed_at"`
}

// SaveDeposit indexes a deposit made on this side.
// Duplicated events are ignored.
func (s *Services) SaveDeposit(ctx context.Context, ev *client.DepositEvent) *types.Error {
	err := s.DbClient.SaveDeposit(ctx, &model.DepositDocument{
		DepositID: ev.DepositID,
		Sender:    ev.Sender,
		Receiver:  ev.Receiver,
		Amount:    ev.Amount,
		Timestamp: ev.Timestamp,
	})
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Warn().Uint64("depositId", ev.DepositID).Msg("deposit already indexed, skipping")
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Uint64("depositId", ev.DepositID).Msg("Failed to save deposit")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// SaveExecution indexes a payout made by this side and adds it to the stats
// of its relayer. Duplicated events are ignored.
func (s *Services) SaveExecution(ctx context.Context, ev *client.ExecuteBridgeEvent) *types.Error {
	err := s.DbClient.SaveExecution(ctx, &model.ExecutionDocument{
		DepositID:   ev.DepositID,
		Relayer:     ev.Relayer,
		Receiver:    ev.Receiver,
		Amount:      ev.Amount,
		Payout:      ev.Payout,
		Fee:         ev.Fee,
		LockedUntil: ev.LockedUntil,
		Timestamp:   ev.Timestamp,
	})
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Warn().Uint64("depositId", ev.DepositID).Msg("execution already indexed, skipping")
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Uint64("depositId", ev.DepositID).Msg("Failed to save execution")
		return types.NewInternalServiceError(err)
	}
	return nil
}

func (s *Services) GetRelayerStats(ctx context.Context, relayer string) (*RelayerStatsPublic, *types.Error) {
	stats, err := s.DbClient.FindRelayerStats(ctx, relayer)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "relayer has no executions")
		}
		log.Ctx(ctx).Error().Err(err).Str("relayer", relayer).Msg("Failed to find relayer stats")
		return nil, types.NewInternalServiceError(err)
	}
	return &RelayerStatsPublic{
		Relayer:        stats.Relayer,
		Executions:     stats.Executions,
		TotalVolume:    stats.TotalVolume,
		TotalFees:      stats.TotalFees,
		LastExecutedAt: stats.LastExecutedAt,
	}, nil
}
