package config

import (
	"fmt"
	"time"
)

type OracleConfig struct {
	// RPCAddr is the full URL of the EVM JSON-RPC endpoint used for
	// token balance reads.
	RPCAddr string `mapstructure:"rpc-addr"`
	// TokenContract is the funding-currency ERC-20 contract address.
	TokenContract string `mapstructure:"token-contract"`
	// WalletAddress is the operator wallet whose balance backs all
	// community allocations.
	WalletAddress string        `mapstructure:"wallet-address"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *OracleConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return fmt.Errorf("oracle rpc-addr is required")
	}
	if !isHexAddress(cfg.TokenContract) {
		return fmt.Errorf("oracle token-contract %q is not a valid address", cfg.TokenContract)
	}
	if !isHexAddress(cfg.WalletAddress) {
		return fmt.Errorf("oracle wallet-address %q is not a valid address", cfg.WalletAddress)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("oracle timeout is required")
	}

	return nil
}

func isHexAddress(s string) bool {
	if len(s) != 42 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
