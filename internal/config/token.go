package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/stakelabs/staking-ledger/pkg"
)

// TokenConfig describes how to reach the token contract through the host
// node, and the two fixed identities of this staking module: its own
// contract address (the subject of operatorOf queries) and the treasury
// account rewards are paid from.
type TokenConfig struct {
	// Endpoint is the base URL of the host node's contract invocation API.
	Endpoint string `mapstructure:"endpoint"`
	// StakingContractIndex/Subindex identify this staking module on the host.
	StakingContractIndex    uint64 `mapstructure:"staking-contract-index"`
	StakingContractSubindex uint64 `mapstructure:"staking-contract-subindex"`
	// TreasuryAddress is the account reward transfers are issued from.
	TreasuryAddress string        `mapstructure:"treasury-address"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxRetryTimes   uint          `mapstructure:"max-retry-times"`
	RetryInterval   time.Duration `mapstructure:"retry-interval"`
}

func (cfg *TokenConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("token endpoint is required")
	}
	if cfg.TreasuryAddress == "" {
		return errors.New("token treasury-address is required")
	}
	if err := pkg.ValidateAccountAddress(cfg.TreasuryAddress); err != nil {
		return fmt.Errorf("token treasury-address is invalid: %w", err)
	}
	if cfg.Timeout <= 0 {
		return errors.New("token timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("token max-retry-times is required")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("token retry-interval must be positive")
	}
	return nil
}
