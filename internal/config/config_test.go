package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  host: 127.0.0.1
  port: 8090
  write-timeout: 60s
  read-timeout: 60s
  idle-timeout: 60s
  allowed-origins: [ "*" ]
  log-level: debug
  max-content-length: 4096
  health-check-interval: 2
db:
  address: "mongodb://localhost:27017"
  db-name: bridge-pool-test
  max-pagination-limit: 10
queue:
  queue_user: user
  queue_password: password
  url: "localhost:5672"
  processing_timeout: 5s
metrics:
  host: 0.0.0.0
  port: 2112
pool:
  side: ethereum
  address: "0x00000000000000000000000000000000000b0001"
  min-stake-amount: "1000000000000000000000"
  cooldown: 1h
relayer:
  enabled: true
  address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
  remote-side: polygon
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewParsesConfig(t *testing.T) {
	cfg, err := New(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "ethereum", cfg.Pool.Side)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000b0001"), cfg.Pool.PoolAddress)
	expected, _ := uint256.FromDecimal("1000000000000000000000")
	assert.Equal(t, expected, cfg.Pool.MinStake)
	assert.Equal(t, time.Hour, cfg.Pool.Cooldown)
	assert.Equal(t, 5*time.Second, cfg.Queue.QueueProcessingTimeout)
	assert.Equal(t, QuorumQueueType, cfg.Queue.QueueType)
	assert.True(t, cfg.Relayer.Enabled)
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), cfg.Relayer.RelayerAddress)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func validPoolConfig() PoolConfig {
	return PoolConfig{
		Side:           "ethereum",
		Address:        "0x00000000000000000000000000000000000b0001",
		MinStakeAmount: "1000",
		Cooldown:       time.Hour,
	}
}

func TestPoolConfigValidate(t *testing.T) {
	cfg := validPoolConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint256.NewInt(1000), cfg.MinStake)

	cases := map[string]func(*PoolConfig){
		"side with dash":    func(c *PoolConfig) { c.Side = "eth-main" },
		"empty side":        func(c *PoolConfig) { c.Side = "" },
		"zero address":      func(c *PoolConfig) { c.Address = "0x0000000000000000000000000000000000000000" },
		"bad address":       func(c *PoolConfig) { c.Address = "0x1234" },
		"zero min stake":    func(c *PoolConfig) { c.MinStakeAmount = "0" },
		"non numeric stake": func(c *PoolConfig) { c.MinStakeAmount = "1e18" },
		"negative cooldown": func(c *PoolConfig) { c.Cooldown = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validPoolConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRelayerConfigValidate(t *testing.T) {
	disabled := RelayerConfig{}
	assert.NoError(t, disabled.Validate())

	missingAddress := RelayerConfig{Enabled: true, RemoteSide: "polygon"}
	assert.Error(t, missingAddress.Validate())

	badSide := RelayerConfig{Enabled: true, Address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", RemoteSide: "Polygon"}
	assert.Error(t, badSide.Validate())
}

func TestRelayerRemoteSideMustDiffer(t *testing.T) {
	cfg, err := New(writeConfig(t, testConfig))
	require.NoError(t, err)

	cfg.Relayer.RemoteSide = cfg.Pool.Side
	assert.Error(t, cfg.Validate())
}

func TestRelayerAddressMustDifferFromPool(t *testing.T) {
	cfg, err := New(writeConfig(t, testConfig))
	require.NoError(t, err)

	// checksum casing differs, the parsed addresses are equal
	cfg.Relayer.Address = "0x00000000000000000000000000000000000B0001"
	assert.ErrorContains(t, cfg.Validate(), "relayer address")

	cfg.Relayer.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestDbConfigValidate(t *testing.T) {
	valid := DbConfig{DbName: "bridge-pool-ethereum", Address: "mongodb://localhost:27017", MaxPaginationLimit: 10}
	require.NoError(t, valid.Validate())

	cases := map[string]struct {
		mutate func(*DbConfig)
		err    string
	}{
		"page of one":     {func(c *DbConfig) { c.MaxPaginationLimit = 1 }, "deposit page size"},
		"missing name":    {func(c *DbConfig) { c.DbName = "" }, "missing db name"},
		"postgres":        {func(c *DbConfig) { c.Address = "postgres://localhost:5432" }, "unsupported db scheme"},
		"no port":         {func(c *DbConfig) { c.Address = "mongodb://localhost" }, "missing port"},
		"privileged port": {func(c *DbConfig) { c.Address = "mongodb://localhost:27" }, "db port"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.err)
		})
	}
}

func TestServerConfigValidate(t *testing.T) {
	cfg, err := New(writeConfig(t, testConfig))
	require.NoError(t, err)
	server := cfg.Server

	server.IdleTimeout = -time.Second
	assert.EqualError(t, server.Validate(), "idle timeout cannot be negative")

	server = cfg.Server
	server.MaxContentLength = 0
	assert.ErrorContains(t, server.Validate(), "max-content-length")

	server = cfg.Server
	server.HealthCheckInterval = 0
	assert.ErrorContains(t, server.Validate(), "health-check-interval")

	server = cfg.Server
	server.LogLevel = "trace"
	assert.Error(t, server.Validate())
	server.LogLevel = ""
	assert.NoError(t, server.Validate())
}

func TestQueueConfigValidate(t *testing.T) {
	cfg := QueueConfig{QueueUser: "user", QueuePassword: "pass", Url: "localhost:5672", QueueProcessingTimeout: time.Second, QueueType: "stream"}
	assert.Error(t, cfg.Validate())

	cfg.QueueType = ClassicQueueType
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, RabbitMqProvider, cfg.Provider)

	cfg.QueueProcessingTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestSqsQueueConfigValidate(t *testing.T) {
	cfg := QueueConfig{Provider: SqsProvider, QueueProcessingTimeout: time.Second}
	assert.Error(t, cfg.Validate(), "region is required")

	cfg.SqsRegion = "us-east-1"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(20), cfg.SqsWaitTimeSeconds)

	cfg.SqsWaitTimeSeconds = 21
	assert.Error(t, cfg.Validate())

	cfg.Provider = "kafka"
	assert.Error(t, cfg.Validate())
}

func TestMetricsConfig(t *testing.T) {
	cfg := DefaultMetricsConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:2112", cfg.GetMetricsAddress())

	cfg.Port = 80
	assert.Error(t, cfg.Validate())
}
