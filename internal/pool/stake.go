package pool

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Stake pulls amount from caller into the pool and adds it to the caller's
// collateral. The caller must have approved the pool beforehand.
func (p *Pool) Stake(caller common.Address, amount *uint256.Int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller == p.address {
		return ErrInvalidCaller
	}
	if amount.Lt(p.params.MinStakeAmount) {
		return ErrInsufficientStakeAmount
	}
	entry := p.stakeEntry(caller)
	newAmount, overflow := new(uint256.Int).AddOverflow(entry.Amount, amount)
	if overflow {
		return ErrOverflow
	}
	newTotal, overflow := new(uint256.Int).AddOverflow(p.totalStaked, amount)
	if overflow {
		return ErrOverflow
	}

	if err := p.ledger.TransferFrom(p.address, caller, p.address, amount); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	p.stakes[caller] = &StakeEntry{Amount: newAmount, LockedUntil: entry.LockedUntil}
	p.totalStaked = newTotal

	p.sink.Emit(StakedEvent{
		Staker:      caller,
		Amount:      amount.Clone(),
		TotalStaked: newTotal.Clone(),
	})
	return nil
}

// Unstake returns amount of the caller's collateral. It fails while the
// caller is within the cooldown of a previous ExecuteBridge.
func (p *Pool) Unstake(caller common.Address, amount *uint256.Int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller == p.address {
		return ErrInvalidCaller
	}
	if amount.IsZero() {
		return ErrZeroAmount
	}
	entry := p.stakeEntry(caller)
	if amount.Gt(entry.Amount) {
		return ErrInsufficientStake
	}
	if p.isLocked(entry) {
		return ErrStakeLocked
	}

	if err := p.ledger.Transfer(p.address, caller, amount); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	newTotal := new(uint256.Int).Sub(p.totalStaked, amount)
	p.stakes[caller] = &StakeEntry{
		Amount:      new(uint256.Int).Sub(entry.Amount, amount),
		LockedUntil: entry.LockedUntil,
	}
	p.totalStaked = newTotal

	p.sink.Emit(UnstakedEvent{
		Staker:      caller,
		Amount:      amount.Clone(),
		TotalStaked: newTotal.Clone(),
	})
	return nil
}
