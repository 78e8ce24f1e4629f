package services

import (
	"context"

	"github.com/babylonchain/bridge-pool-service/internal/pool"
)

type PoolInfoPublic struct {
	Side                 string  `json:"side"`
	PoolAddress          string  `json:"pool_address"`
	PoolBalance          string  `json:"pool_balance"`
	TotalStaked          string  `json:"total_staked"`
	DepositCount         uint64  `json:"deposit_count"`
	LastDepositID        *uint64 `json:"last_deposit_id,omitempty"`
	MinStakeAmount       string  `json:"min_stake_amount"`
	CooldownSeconds      int64   `json:"cooldown_seconds"`
	StakeCapPercent      uint64  `json:"stake_cap_percent"`
	ReceiverSharePercent uint64  `json:"receiver_share_percent"`
	RelayerFeePercent    uint64  `json:"relayer_fee_percent"`
	TokenTotalSupply     string  `json:"token_total_supply"`
}

func (s *Services) GetPoolInfo(ctx context.Context) *PoolInfoPublic {
	params := s.pool.Params()
	info := &PoolInfoPublic{
		Side:                 s.cfg.Pool.Side,
		PoolAddress:          s.pool.Address().Hex(),
		PoolBalance:          s.pool.Balance().Dec(),
		TotalStaked:          s.pool.TotalStaked().Dec(),
		DepositCount:         s.pool.DepositCount(),
		MinStakeAmount:       params.MinStakeAmount.Dec(),
		CooldownSeconds:      int64(params.Cooldown.Seconds()),
		StakeCapPercent:      pool.StakeCapPercent,
		ReceiverSharePercent: pool.ReceiverSharePercent,
		RelayerFeePercent:    pool.RelayerFeePercent,
		TokenTotalSupply:     s.ledger.TotalSupply().Dec(),
	}
	if id, ok := s.pool.LastDepositID(); ok {
		info.LastDepositID = &id
	}
	return info
}
