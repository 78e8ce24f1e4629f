package pool

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/token"
)

// Deposit locks amount from caller in the pool for receiver on the other
// side and returns the allocated deposit id.
func (p *Pool) Deposit(caller common.Address, amount *uint256.Int, receiver common.Address) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller == p.address {
		return 0, ErrInvalidCaller
	}
	if amount.IsZero() {
		return 0, ErrZeroAmount
	}
	if !p.validReceiver(receiver) {
		return 0, ErrInvalidReceiver
	}

	if err := p.ledger.TransferFrom(p.address, caller, p.address, amount); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	id := uint64(len(p.deposits))
	p.deposits = append(p.deposits, &Deposit{
		ID:       id,
		Sender:   caller,
		Receiver: receiver,
		Amount:   amount.Clone(),
	})

	p.sink.Emit(DepositEvent{
		DepositID: id,
		Sender:    caller,
		Receiver:  receiver,
		Amount:    amount.Clone(),
		Timestamp: p.now(),
	})
	return id, nil
}

// ExecuteBridge pays out a deposit observed on the other side. The receiver
// gets ReceiverSharePercent of amount and the caller RelayerFeePercent, both
// from the pool balance. A deposit id can be executed once.
func (p *Pool) ExecuteBridge(
	caller common.Address, depositID uint64, receiver common.Address, amount *uint256.Int,
) (payout, fee *uint256.Int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// must stay the first check, replays are rejected whatever the caller
	if p.executed[depositID] {
		return nil, nil, ErrAlreadyExecuted
	}
	if caller == p.address {
		return nil, nil, ErrInvalidCaller
	}
	if amount.IsZero() {
		return nil, nil, ErrZeroAmount
	}
	if !p.validReceiver(receiver) {
		return nil, nil, ErrInvalidReceiver
	}
	entry := p.stakeEntry(caller)
	if entry.Amount.IsZero() {
		return nil, nil, ErrInsufficientStake
	}
	if amount.Gt(StakeCap(entry.Amount)) {
		return nil, nil, ErrAmountExceedsStakeCap
	}
	if p.isLocked(entry) {
		return nil, nil, ErrStakeLocked
	}

	payout, fee = SplitPayout(amount)
	err = p.ledger.WithTransaction(func(tx token.Ledger) error {
		if err := tx.Transfer(p.address, receiver, payout); err != nil {
			return err
		}
		return tx.Transfer(p.address, caller, fee)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	now := p.now()
	lockedUntil := now.Add(p.params.Cooldown)
	p.executed[depositID] = true
	p.stakes[caller] = &StakeEntry{Amount: entry.Amount, LockedUntil: lockedUntil}

	p.sink.Emit(ExecuteBridgeEvent{
		DepositID:   depositID,
		Relayer:     caller,
		Receiver:    receiver,
		Amount:      amount.Clone(),
		Payout:      payout.Clone(),
		Fee:         fee.Clone(),
		LockedUntil: lockedUntil,
		Timestamp:   now,
	})
	return payout, fee, nil
}

// Tokens sent to the pool itself would stay in custody and never reach
// anyone on this side.
func (p *Pool) validReceiver(receiver common.Address) bool {
	return receiver != (common.Address{}) && receiver != p.address
}
