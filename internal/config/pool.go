package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

// side names are used as queue name prefixes
var sideNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

type PoolConfig struct {
	Side    string `mapstructure:"side"`
	Address string `mapstructure:"address"`
	// MinStakeAmount is a decimal amount in token base units.
	MinStakeAmount string        `mapstructure:"min-stake-amount"`
	Cooldown       time.Duration `mapstructure:"cooldown"`

	PoolAddress common.Address
	MinStake    *uint256.Int
}

func (cfg *PoolConfig) Validate() error {
	if err := ValidateSideName(cfg.Side); err != nil {
		return err
	}

	addr, err := utils.ParseAddress(cfg.Address)
	if err != nil {
		return fmt.Errorf("invalid pool address: %w", err)
	}
	cfg.PoolAddress = addr

	minStake, err := utils.ParseAmount(cfg.MinStakeAmount)
	if err != nil {
		return fmt.Errorf("invalid min-stake-amount: %w", err)
	}
	if minStake.IsZero() {
		return errors.New("min-stake-amount must be greater than 0")
	}
	cfg.MinStake = minStake

	if cfg.Cooldown < 0 {
		return errors.New("cooldown cannot be negative")
	}

	return nil
}

func ValidateSideName(side string) error {
	if !sideNameRegex.MatchString(side) {
		return fmt.Errorf("invalid side name %q: lowercase letters, digits and underscores only", side)
	}
	return nil
}
