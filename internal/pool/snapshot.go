package pool

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// State is a deep copy of the pool bookkeeping, used to persist the pool
// between restarts. Token balances live in the ledger and are not included.
type State struct {
	Stakes      map[common.Address]StakeEntry
	TotalStaked *uint256.Int
	Deposits    []Deposit
	Executed    []uint64
	Votes       map[common.Address]map[common.Address]*uint256.Int
}

func (p *Pool) Snapshot() *State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := &State{
		Stakes:      make(map[common.Address]StakeEntry, len(p.stakes)),
		TotalStaked: p.totalStaked.Clone(),
		Deposits:    make([]Deposit, 0, len(p.deposits)),
		Executed:    make([]uint64, 0, len(p.executed)),
		Votes:       make(map[common.Address]map[common.Address]*uint256.Int, len(p.votes)),
	}
	for addr, e := range p.stakes {
		s.Stakes[addr] = StakeEntry{Amount: e.Amount.Clone(), LockedUntil: e.LockedUntil}
	}
	for _, d := range p.deposits {
		s.Deposits = append(s.Deposits, Deposit{
			ID:       d.ID,
			Sender:   d.Sender,
			Receiver: d.Receiver,
			Amount:   d.Amount.Clone(),
			Executed: p.executed[d.ID],
		})
	}
	for id := range p.executed {
		s.Executed = append(s.Executed, id)
	}
	for target, voters := range p.votes {
		m := make(map[common.Address]*uint256.Int, len(voters))
		for voter, w := range voters {
			m[voter] = w.Clone()
		}
		s.Votes[target] = m
	}
	return s
}

// Restore replaces the pool bookkeeping with s after checking that it is
// internally consistent. Tallies are rebuilt from the individual votes.
func (p *Pool) Restore(s *State) error {
	sum := new(uint256.Int)
	for addr, e := range s.Stakes {
		if e.Amount == nil {
			return fmt.Errorf("stake of %s is missing an amount", addr.Hex())
		}
		var overflow bool
		if sum, overflow = new(uint256.Int).AddOverflow(sum, e.Amount); overflow {
			return ErrOverflow
		}
	}
	if s.TotalStaked == nil || !sum.Eq(s.TotalStaked) {
		return fmt.Errorf("pool state is inconsistent: stakes sum to %s, total staked is %v", sum.Dec(), s.TotalStaked)
	}
	for i, d := range s.Deposits {
		if d.ID != uint64(i) {
			return fmt.Errorf("pool state is inconsistent: deposit at position %d has id %d", i, d.ID)
		}
		if d.Amount == nil {
			return fmt.Errorf("deposit %d is missing an amount", d.ID)
		}
	}

	stakes := make(map[common.Address]*StakeEntry, len(s.Stakes))
	for addr, e := range s.Stakes {
		stakes[addr] = &StakeEntry{Amount: e.Amount.Clone(), LockedUntil: e.LockedUntil}
	}
	deposits := make([]*Deposit, 0, len(s.Deposits))
	for _, d := range s.Deposits {
		deposits = append(deposits, &Deposit{
			ID:       d.ID,
			Sender:   d.Sender,
			Receiver: d.Receiver,
			Amount:   d.Amount.Clone(),
		})
	}
	executed := make(map[uint64]bool, len(s.Executed))
	for _, id := range s.Executed {
		executed[id] = true
	}
	tallies := make(map[common.Address]*uint256.Int, len(s.Votes))
	votes := make(map[common.Address]map[common.Address]*uint256.Int, len(s.Votes))
	for target, voters := range s.Votes {
		tally := new(uint256.Int)
		m := make(map[common.Address]*uint256.Int, len(voters))
		for voter, w := range voters {
			var overflow bool
			if tally, overflow = new(uint256.Int).AddOverflow(tally, w); overflow {
				return ErrOverflow
			}
			m[voter] = w.Clone()
		}
		tallies[target] = tally
		votes[target] = m
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stakes = stakes
	p.totalStaked = s.TotalStaked.Clone()
	p.deposits = deposits
	p.executed = executed
	p.tallies = tallies
	p.votes = votes
	return nil
}
