package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testTreasuryAddress = "3kBx2h5Y2veb4hZgAJWPrr8RPwrD2F2FkyjtSYv8mxn32eYC5i"

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			WriteTimeout: 30 * time.Second,
			ReadTimeout:  10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Token: TokenConfig{
			Endpoint:                "http://localhost:9095",
			StakingContractIndex:    2043,
			StakingContractSubindex: 0,
			TreasuryAddress:         testTreasuryAddress,
			Timeout:                 20 * time.Second,
			MaxRetryTimes:           3,
			RetryInterval:           500 * time.Millisecond,
		},
		Db: DbConfig{
			Username: "user",
			Password: "password",
			Address:  "mongodb://localhost:27017",
			DbName:   "staking-ledger",
		},
		Queue: QueueConfig{
			QueueUser:      "guest",
			QueuePassword:  "guest",
			Url:            "localhost:5672",
			Exchange:       "staking.events",
			PublishTimeout: 5 * time.Second,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "missing api host",
			mutate: func(cfg *Config) { cfg.API.Host = "" },
		},
		{
			name:   "api port out of range",
			mutate: func(cfg *Config) { cfg.API.Port = 70000 },
		},
		{
			name:   "missing token endpoint",
			mutate: func(cfg *Config) { cfg.Token.Endpoint = "" },
		},
		{
			name:   "missing treasury address",
			mutate: func(cfg *Config) { cfg.Token.TreasuryAddress = "" },
		},
		{
			name:   "malformed treasury address",
			mutate: func(cfg *Config) { cfg.Token.TreasuryAddress = "not-a-real-address" },
		},
		{
			name:   "zero token retries",
			mutate: func(cfg *Config) { cfg.Token.MaxRetryTimes = 0 },
		},
		{
			name:   "missing db name",
			mutate: func(cfg *Config) { cfg.Db.DbName = "" },
		},
		{
			name:   "missing queue exchange",
			mutate: func(cfg *Config) { cfg.Queue.Exchange = "" },
		},
		{
			name:   "non-positive publish timeout",
			mutate: func(cfg *Config) { cfg.Queue.PublishTimeout = 0 },
		},
		{
			name:   "metrics port out of range",
			mutate: func(cfg *Config) { cfg.Metrics.Port = 0 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestNew(t *testing.T) {
	content := `
api:
  host: "0.0.0.0"
  port: 8080
  write-timeout: 30s
  read-timeout: 10s
  idle-timeout: 2m
token:
  endpoint: "http://localhost:9095"
  staking-contract-index: 2043
  staking-contract-subindex: 0
  treasury-address: "` + testTreasuryAddress + `"
  timeout: 20s
  max-retry-times: 3
  retry-interval: 500ms
db:
  username: "user"
  password: "password"
  address: "mongodb://localhost:27017"
  db-name: "staking-ledger"
queue:
  queue-user: "guest"
  queue-password: "guest"
  url: "localhost:5672"
  exchange: "staking.events"
  publish-timeout: 5s
metrics:
  host: "0.0.0.0"
  port: 2112
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := New(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.API.Address())
	require.Equal(t, uint64(2043), cfg.Token.StakingContractIndex)
	require.Equal(t, testTreasuryAddress, cfg.Token.TreasuryAddress)
	require.Equal(t, 500*time.Millisecond, cfg.Token.RetryInterval)
	require.Equal(t, "staking-ledger", cfg.Db.DbName)
	require.Equal(t, 2112, cfg.Metrics.GetMetricsPort())
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
}
