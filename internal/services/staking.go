package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/pool"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type StakerPublic struct {
	Address      string `json:"address"`
	StakedAmount string `json:"staked_amount"`
	// ExecutionCap is the largest amount the staker may execute at once.
	ExecutionCap   string `json:"execution_cap"`
	LockedUntil    int64  `json:"locked_until,omitempty"`
	Locked         bool   `json:"locked"`
	BlacklistVotes string `json:"blacklist_votes"`
	TokenBalance   string `json:"token_balance"`
}

type StakeResultPublic struct {
	Staker       string `json:"staker"`
	StakedAmount string `json:"staked_amount"`
	TotalStaked  string `json:"total_staked"`
}

func (s *Services) Stake(ctx context.Context, caller common.Address, amount *uint256.Int) (*StakeResultPublic, *types.Error) {
	err := s.apply(ctx, "stake", func() error {
		return s.pool.Stake(caller, amount)
	})
	if err != nil {
		return nil, err
	}
	return s.stakeResult(caller), nil
}

func (s *Services) Unstake(ctx context.Context, caller common.Address, amount *uint256.Int) (*StakeResultPublic, *types.Error) {
	err := s.apply(ctx, "unstake", func() error {
		return s.pool.Unstake(caller, amount)
	})
	if err != nil {
		return nil, err
	}
	return s.stakeResult(caller), nil
}

func (s *Services) GetStaker(ctx context.Context, staker common.Address) *StakerPublic {
	entry := s.pool.StakeOf(staker)
	var lockedUntil int64
	if !entry.LockedUntil.IsZero() {
		lockedUntil = entry.LockedUntil.Unix()
	}
	return &StakerPublic{
		Address:        staker.Hex(),
		StakedAmount:   entry.Amount.Dec(),
		ExecutionCap:   pool.StakeCap(entry.Amount).Dec(),
		LockedUntil:    lockedUntil,
		Locked:         s.pool.IsLocked(staker),
		BlacklistVotes: s.pool.BlacklistVotes(staker).Dec(),
		TokenBalance:   s.ledger.BalanceOf(staker).Dec(),
	}
}

func (s *Services) stakeResult(staker common.Address) *StakeResultPublic {
	return &StakeResultPublic{
		Staker:       staker.Hex(),
		StakedAmount: s.pool.StakeOf(staker).Amount.Dec(),
		TotalStaked:  s.pool.TotalStaked().Dec(),
	}
}
