package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envVarPrefix = "VPALLOC"

// Config ...
type Config struct {
	Size uint32 `envconfig:"VPALLOC_SIZE" default:"1048576"`
}

// LoadConfig ...
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &c, nil
}
