package token

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Decimals is the number of decimals of the bridged token.
const Decimals = 18

var (
	ErrInsufficientBalance   = errors.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInvalidAddress        = errors.New("zero address is not allowed")
	ErrOverflow              = errors.New("balance overflow")
)

// Reader exposes the read-only part of a token ledger.
type Reader interface {
	BalanceOf(owner common.Address) *uint256.Int
	Allowance(owner, spender common.Address) *uint256.Int
	TotalSupply() *uint256.Int
}

// Ledger is the fungible token collaborator used by the bridge pool.
// Every call either fully succeeds or fails without partial effect.
type Ledger interface {
	Reader
	Approve(owner, spender common.Address, amount *uint256.Int) error
	Transfer(from, to common.Address, amount *uint256.Int) error
	// TransferFrom moves amount from `from` to `to` on behalf of spender,
	// consuming spender's allowance.
	TransferFrom(spender, from, to common.Address, amount *uint256.Int) error
	// WithTransaction runs fn against a transactional view of the ledger.
	// If fn returns an error, every change made through tx is discarded.
	WithTransaction(fn func(tx Ledger) error) error
}

// FromTokens converts a whole token count into base units.
func FromTokens(tokens uint64) *uint256.Int {
	unit := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(Decimals))
	return new(uint256.Int).Mul(uint256.NewInt(tokens), unit)
}
