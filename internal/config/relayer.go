package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

// RelayerConfig enables executing the remote side's deposits on this pool.
type RelayerConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Address    string `mapstructure:"address"`
	RemoteSide string `mapstructure:"remote-side"`

	RelayerAddress common.Address
}

func (cfg *RelayerConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}

	addr, err := utils.ParseAddress(cfg.Address)
	if err != nil {
		return fmt.Errorf("invalid relayer address: %w", err)
	}
	cfg.RelayerAddress = addr

	if err := ValidateSideName(cfg.RemoteSide); err != nil {
		return fmt.Errorf("invalid relayer remote side: %w", err)
	}

	return nil
}
