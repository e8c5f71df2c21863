package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultDatabaseURI     = ""
	DefaultPassCost        = 3
	DefaultSecretKey       = "secret"
	DefaultTokenLifetime   = 3 * time.Hour
	DefaultWithdrawMinimum = 5.0
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	PassCost        int           `env:"PASS_COST"`
	SecretKey       string        `env:"SECRET_KEY"`
	TokenLifetime   time.Duration `env:"TOKEN_LIFETIME"`
	WithdrawMinimum float64       `env:"WITHDRAW_MINIMUM"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")

	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")
	flag.Float64Var(&config.WithdrawMinimum, "w", DefaultWithdrawMinimum, "Minimum withdraw amount, currency units")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
