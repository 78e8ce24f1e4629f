package pool

import "errors"

var (
	ErrInsufficientStakeAmount = errors.New("stake amount is below the minimum collateral")
	ErrInsufficientStake       = errors.New("insufficient stake")
	ErrStakeLocked             = errors.New("stake is locked until the cooldown elapses")
	ErrAmountExceedsStakeCap   = errors.New("amount exceeds the stake cap of the caller")
	ErrAlreadyExecuted         = errors.New("deposit already executed")
	ErrTargetNotStaked         = errors.New("target holds no stake")
	ErrTransferFailed          = errors.New("token transfer failed")
	ErrZeroAmount              = errors.New("amount must be greater than zero")
	ErrInvalidReceiver         = errors.New("receiver must not be the zero address or the pool")
	ErrInvalidCaller           = errors.New("the pool cannot act as a caller")
	ErrOverflow                = errors.New("amount overflows 256 bits")
	ErrDepositNotFound         = errors.New("deposit not found")
)
