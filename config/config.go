package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTimezone is used when APP_TIMEZONE is unset.
	DefaultTimezone = "UTC"

	// DefaultMaxTimezoneLength bounds the stored identifier column width when
	// APP_MAX_TIMEZONE_LENGTH is unset.
	DefaultMaxTimezoneLength = 100
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name              string `envconfig:"APP_NAME"`
		Timezone          string `envconfig:"TIMEZONE"`
		MaxTimezoneLength int    `envconfig:"MAX_TIMEZONE_LENGTH"`
	} `envconfig:"APP"`

	DB struct {
		Postgres struct {
			MaxRetry      int `envconfig:"MAX_RETRY"`
			RetryWaitTime int `envconfig:"RETRY_WAIT_TIME"`
			Read          struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		applyDefaults(&conf)

		initialized = true
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
	}

	if cfg.App.MaxTimezoneLength == 0 {
		cfg.App.MaxTimezoneLength = DefaultMaxTimezoneLength
	}
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
