package pool

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// VoteToBlacklistNode adds the caller's current stake to the vote tally
// against target. A voter counts once per target: voting again replaces the
// earlier contribution with the voter's stake at that moment.
//
// Once the tally reaches half of the total stake the target's collateral is
// forfeited. The forfeited tokens stay in the pool. The tally is never reset.
// It returns true when this vote removed the target.
func (p *Pool) VoteToBlacklistNode(caller, target common.Address) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller == p.address {
		return false, ErrInvalidCaller
	}
	targetEntry := p.stakeEntry(target)
	if targetEntry.Amount.IsZero() {
		return false, ErrTargetNotStaked
	}
	weight := p.stakeEntry(caller).Amount
	if weight.IsZero() {
		return false, ErrInsufficientStake
	}

	tally := new(uint256.Int)
	if t, ok := p.tallies[target]; ok {
		tally.Set(t)
	}
	voters, ok := p.votes[target]
	if !ok {
		voters = make(map[common.Address]*uint256.Int)
		p.votes[target] = voters
	}
	if prev, ok := voters[caller]; ok {
		tally.Sub(tally, prev)
	}
	tally, overflow := new(uint256.Int).AddOverflow(tally, weight)
	if overflow {
		return false, ErrOverflow
	}

	voters[caller] = weight.Clone()
	p.tallies[target] = tally

	p.sink.Emit(BlacklistVoteEvent{
		Voter:  caller,
		Target: target,
		Weight: weight.Clone(),
		Tally:  tally.Clone(),
	})

	if !reachesMajority(tally, p.totalStaked) {
		return false, nil
	}

	forfeited := targetEntry.Amount
	p.totalStaked = new(uint256.Int).Sub(p.totalStaked, forfeited)
	p.stakes[target] = &StakeEntry{Amount: new(uint256.Int), LockedUntil: targetEntry.LockedUntil}

	p.sink.Emit(NodeBlacklistedEvent{
		Target:      target,
		Forfeited:   forfeited.Clone(),
		Tally:       tally.Clone(),
		TotalStaked: p.totalStaked.Clone(),
	})
	return true, nil
}

// reachesMajority reports tally >= total/2 without rounding total down,
// i.e. tally >= ceil(total/2).
func reachesMajority(tally, total *uint256.Int) bool {
	half := new(uint256.Int).Rsh(total, 1)
	if total.Uint64()&1 == 1 {
		half.AddUint64(half, 1)
	}
	return !tally.Lt(half)
}
