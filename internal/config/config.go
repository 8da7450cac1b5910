package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"github.com/finlabs/bankcore/internal/domain"
)

// Config carries the process-level defaults for the two account products.
// Per-account overrides still win; these only replace the hard-coded
// fallbacks when an account carries no configuration of its own.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	SavingAnnualInterestRate      float64 `env:"SAVING_ANNUAL_INTEREST_RATE" envDefault:"0.0125"`
	CheckingOverdraftLimit        int64   `env:"CHECKING_OVERDRAFT_LIMIT" envDefault:"100000"`
	CheckingOverdraftInterestRate float64 `env:"CHECKING_OVERDRAFT_INTEREST_RATE" envDefault:"0.18"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c *Config) SavingConfig() domain.SavingConfig {
	return domain.SavingConfig{
		AnnualInterestRate: decimal.NewFromFloat(c.SavingAnnualInterestRate),
	}
}

func (c *Config) CheckingConfig() domain.CheckingConfig {
	return domain.CheckingConfig{
		OverdraftLimit:        c.CheckingOverdraftLimit,
		OverdraftInterestRate: decimal.NewFromFloat(c.CheckingOverdraftInterestRate),
	}
}
