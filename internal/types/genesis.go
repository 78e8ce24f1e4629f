package types

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TokenGenesis lists the initial token allocations of a side. Amounts are
// decimal strings in token base units.
type TokenGenesis struct {
	Balances map[string]string `json:"balances"`
	// PoolLiquidity is minted to the pool address so that it can pay out
	// transfers before the first deposit lands. Optional.
	PoolLiquidity string `json:"pool_liquidity"`

	Allocations map[common.Address]*uint256.Int `json:"-"`
	Liquidity   *uint256.Int                    `json:"-"`
}

func NewTokenGenesis(filePath string) (*TokenGenesis, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var genesis TokenGenesis
	err = json.Unmarshal(data, &genesis)
	if err != nil {
		return nil, err
	}
	err = ValidateTokenGenesis(&genesis)
	if err != nil {
		return nil, err
	}

	return &genesis, nil
}

// ValidateTokenGenesis checks the genesis file and fills the parsed fields.
func ValidateTokenGenesis(g *TokenGenesis) error {
	if len(g.Balances) == 0 {
		return fmt.Errorf("genesis must allocate at least one balance")
	}

	total := new(uint256.Int)
	g.Allocations = make(map[common.Address]*uint256.Int, len(g.Balances))
	for addrStr, amountStr := range g.Balances {
		if !common.IsHexAddress(addrStr) {
			return fmt.Errorf("invalid genesis address: %s", addrStr)
		}
		addr := common.HexToAddress(addrStr)
		if addr == (common.Address{}) {
			return fmt.Errorf("genesis cannot allocate to the zero address")
		}
		if _, ok := g.Allocations[addr]; ok {
			return fmt.Errorf("duplicate genesis address: %s", addr.Hex())
		}
		amount, err := uint256.FromDecimal(amountStr)
		if err != nil {
			return fmt.Errorf("invalid genesis amount for %s: %w", addrStr, err)
		}
		var overflow bool
		if total, overflow = new(uint256.Int).AddOverflow(total, amount); overflow {
			return fmt.Errorf("genesis total supply overflows")
		}
		g.Allocations[addr] = amount
	}

	g.Liquidity = new(uint256.Int)
	if g.PoolLiquidity != "" {
		liquidity, err := uint256.FromDecimal(g.PoolLiquidity)
		if err != nil {
			return fmt.Errorf("invalid pool liquidity: %w", err)
		}
		if _, overflow := new(uint256.Int).AddOverflow(total, liquidity); overflow {
			return fmt.Errorf("genesis total supply overflows")
		}
		g.Liquidity = liquidity
	}

	return nil
}
