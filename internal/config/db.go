package config

import (
	"fmt"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Address  string `mapstructure:"address"`
	DbName   string `mapstructure:"db-name"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return fmt.Errorf("db address is required")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("db name is required")
	}
	// credentials are optional so tests can run against an auth-less instance,
	// but they come as a pair
	if (cfg.Username == "") != (cfg.Password == "") {
		return fmt.Errorf("db username and password must be set together")
	}

	return nil
}
