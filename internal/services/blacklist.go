package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type BlacklistVotePublic struct {
	Voter       string `json:"voter"`
	Target      string `json:"target"`
	Tally       string `json:"tally"`
	TotalStaked string `json:"total_staked"`
	Removed     bool   `json:"removed"`
}

type BlacklistTallyPublic struct {
	Target      string `json:"target"`
	Tally       string `json:"tally"`
	TargetStake string `json:"target_stake"`
	TotalStaked string `json:"total_staked"`
}

func (s *Services) VoteToBlacklistNode(ctx context.Context, caller, target common.Address) (*BlacklistVotePublic, *types.Error) {
	var removed bool
	err := s.apply(ctx, "blacklist_vote", func() error {
		var err error
		removed, err = s.pool.VoteToBlacklistNode(caller, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BlacklistVotePublic{
		Voter:       caller.Hex(),
		Target:      target.Hex(),
		Tally:       s.pool.BlacklistVotes(target).Dec(),
		TotalStaked: s.pool.TotalStaked().Dec(),
		Removed:     removed,
	}, nil
}

func (s *Services) GetBlacklistTally(ctx context.Context, target common.Address) *BlacklistTallyPublic {
	return &BlacklistTallyPublic{
		Target:      target.Hex(),
		Tally:       s.pool.BlacklistVotes(target).Dec(),
		TargetStake: s.pool.StakeOf(target).Amount.Dec(),
		TotalStaked: s.pool.TotalStaked().Dec(),
	}
}
