package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type TokenBalancePublic struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type AllowancePublic struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

func (s *Services) GetTokenBalance(ctx context.Context, owner common.Address) *TokenBalancePublic {
	return &TokenBalancePublic{
		Address: owner.Hex(),
		Balance: s.ledger.BalanceOf(owner).Dec(),
	}
}

func (s *Services) GetAllowance(ctx context.Context, owner, spender common.Address) *AllowancePublic {
	return &AllowancePublic{
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Allowance: s.ledger.Allowance(owner, spender).Dec(),
	}
}

// Approve lets spender move up to amount of owner's tokens. Stakes and
// deposits need an allowance for the pool address.
func (s *Services) Approve(
	ctx context.Context, owner, spender common.Address, amount *uint256.Int,
) (*AllowancePublic, *types.Error) {
	if err := s.rejectPoolAccount(owner, "approve"); err != nil {
		return nil, err
	}
	err := s.apply(ctx, "approve", func() error {
		return s.ledger.Approve(owner, spender, amount)
	})
	if err != nil {
		return nil, err
	}
	return s.GetAllowance(ctx, owner, spender), nil
}

// Transfer moves tokens between two holders of this side's ledger.
func (s *Services) Transfer(
	ctx context.Context, from, to common.Address, amount *uint256.Int,
) (*TokenBalancePublic, *types.Error) {
	if err := s.rejectPoolAccount(from, "transfer from"); err != nil {
		return nil, err
	}
	err := s.apply(ctx, "transfer", func() error {
		return s.ledger.Transfer(from, to, amount)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTokenBalance(ctx, from), nil
}

// The pool balance only leaves custody through Unstake and ExecuteBridge.
func (s *Services) rejectPoolAccount(account common.Address, action string) *types.Error {
	if account != s.pool.Address() {
		return nil
	}
	return types.NewErrorWithMsg(
		http.StatusForbidden, types.Forbidden,
		fmt.Sprintf("cannot %s the pool account %s", action, account.Hex()),
	)
}
