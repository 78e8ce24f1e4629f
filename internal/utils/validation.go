package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var ErrZeroAddress = errors.New("zero address is not allowed")

// ParseAddress parses a 0x-prefixed hex account address. The zero address is
// rejected.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, ErrZeroAddress
	}
	return addr, nil
}

// IsValidAddress checks if the given string is a non-zero hex address.
func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

// ParseAmount parses a decimal token amount in base units.
func ParseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.New("amount is empty")
	}
	amount, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// ParseDepositID parses a deposit id given in decimal.
func ParseDepositID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid deposit id %q", s)
	}
	return id, nil
}
