package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// DbConfig points one side's service at its MongoDB database. Each side of
// the bridge keeps its own database: the pool state snapshot, the indexed
// deposits and executions, and the unprocessable event messages all live
// there.
type DbConfig struct {
	// DbName is usually suffixed with the pool side, e.g. bridge-pool-ethereum.
	DbName  string `mapstructure:"db-name"`
	Address string `mapstructure:"address"`
	// MaxPaginationLimit is the page size of /v1/deposits. A full page
	// carries a token that resumes below its oldest deposit id.
	MaxPaginationLimit int64 `mapstructure:"max-pagination-limit"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return fmt.Errorf("missing db address")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("missing db name")
	}
	if err := validateMongoAddress(cfg.Address); err != nil {
		return err
	}

	// a page of one can never produce a next-page token
	if cfg.MaxPaginationLimit < 2 {
		return fmt.Errorf("deposit page size (max-pagination-limit) must be greater than 1")
	}
	return nil
}

func validateMongoAddress(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("invalid db address: %w", err)
	}
	if u.Scheme != "mongodb" {
		return fmt.Errorf("unsupported db scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in db address")
	}

	port := u.Port()
	if port == "" {
		return fmt.Errorf("missing port in db address")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port in db address: %w", err)
	}
	if portNum < 1024 || portNum > 65535 {
		return fmt.Errorf("db port must be between 1024 and 65535 (inclusive)")
	}
	return nil
}
