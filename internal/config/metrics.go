package config

import (
	"fmt"
)

const (
	defaultMetricsPort = 2112
	minPort            = 1024
	maxPort            = 65535
)

type MetricsConfig struct {
	Port int `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port == 0 {
		return nil
	}
	if cfg.Port < minPort || cfg.Port > maxPort {
		return fmt.Errorf("metrics port must be between %d and %d", minPort, maxPort)
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	if cfg.Port == 0 {
		return defaultMetricsPort
	}
	return cfg.Port
}
