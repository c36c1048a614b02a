package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"

	"fundscope/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Chain configures the blockchain client. Environment variables
	// prefixed with CHAIN_ will populate this struct.
	Chain configs.Chain `envPrefix:"CHAIN_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if !common.IsHexAddress(c.Chain.FactoryAddress) {
		return fmt.Errorf("CHAIN_FACTORY_ADDRESS %q is not a hex address", c.Chain.FactoryAddress)
	}
	if c.Chain.ChainID <= 0 {
		return errors.New("CHAIN_ID must be positive")
	}
	if c.Chain.RequestsPerSecond <= 0 {
		return errors.New("CHAIN_REQUESTS_PER_SECOND must be positive")
	}
	if c.Chain.Burst <= 0 {
		return errors.New("CHAIN_BURST must be positive")
	}
	if c.Chain.SnapshotConcurrency <= 0 {
		return errors.New("CHAIN_SNAPSHOT_CONCURRENCY must be positive")
	}
	return nil
}
