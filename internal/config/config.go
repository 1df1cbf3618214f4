package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Store struct {
		DSN            string `env:"DSN,required"`
		Schema         string `env:"SCHEMA,required"`
		Container      string `env:"CONTAINER,required"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"STORE_"`
	Session struct {
		Expiration    int    `env:"EXPIRATION" envDefault:"86400"` // 24 hours
		SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@hourly"`
	} `envPrefix:"SESSION_"`
	Bootstrap struct {
		Enabled  bool   `env:"ENABLED" envDefault:"false"`
		Username string `env:"USERNAME" envDefault:"admin"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"BOOTSTRAP_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// surface only the first error so the log stays readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
