package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Db      DbConfig      `mapstructure:"db"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Pool    PoolConfig    `mapstructure:"pool"`
	Relayer RelayerConfig `mapstructure:"relayer"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if err := cfg.Queue.Validate(); err != nil {
		return err
	}

	if err := cfg.Pool.Validate(); err != nil {
		return err
	}

	if err := cfg.Relayer.Validate(); err != nil {
		return err
	}

	if cfg.Relayer.Enabled && cfg.Relayer.RemoteSide == cfg.Pool.Side {
		return fmt.Errorf("relayer remote side must differ from the pool side %q", cfg.Pool.Side)
	}
	if cfg.Relayer.Enabled && cfg.Relayer.RelayerAddress == cfg.Pool.PoolAddress {
		return fmt.Errorf("relayer address must differ from the pool address %s", cfg.Pool.PoolAddress.Hex())
	}

	return nil
}

// New returns a fully parsed Config object from a given file directory
func New(cfgFile string) (*Config, error) {
	_, err := os.Stat(cfgFile)
	if err != nil {
		return nil, err
	}

	viper.SetConfigFile(cfgFile)

	viper.AutomaticEnv()
	/*
		Nested fields in yml are mapped with `.` -> `_` and `-` -> `__` when overriding via env variables:
		1. `pool.side` can be overriden by `POOL_SIDE`
		2. `pool.min-stake-amount` can be overriden by `POOL_MIN__STAKE__AMOUNT`
		`-` is avoided in env variable names as not every shell supports it.
	*/
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "__"))

	err = viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err = viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
