package config

import (
	"fmt"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/common"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode       bool     `env:"TEST_MODE" envDefault:"false"`
	Secret           string   `env:"SECRET,required"`
	PostgresqlURL    string   `env:"POSTGRESQL_URL,required"`
	Port             uint16   `env:"PORT" envDefault:"8080"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	BcryptHasherCost int      `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	AccountActivationDays int    `env:"ACCOUNT_ACTIVATION_DAYS" envDefault:"7"`
	DefaultFromEmail      string `env:"DEFAULT_FROM_EMAIL,required"`
	SiteName              string `env:"SITE_NAME" envDefault:"example.com"`
	SiteDomain            string `env:"SITE_DOMAIN" envDefault:"example.com"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.AccountActivationDays <= 0 {
		return nil, fmt.Errorf("ACCOUNT_ACTIVATION_DAYS must be positive, got %d", cfg.AccountActivationDays)
	}
	if !cfg.IsTestMode && (cfg.AwsAccessKey == "" || cfg.AwsSecretKey == "") {
		return nil, fmt.Errorf("AWS_ACCESS_KEY and AWS_SECRET_KEY must be set")
	}
	return cfg, nil
}

func (c *Config) Activation() activation.Config {
	return activation.Config{
		ExpirationDays:   c.AccountActivationDays,
		DefaultFromEmail: common.NewEmail(c.DefaultFromEmail),
		Site:             activation.Site{Name: c.SiteName, Domain: c.SiteDomain},
	}
}
