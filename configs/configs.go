// Package configs parses the process configuration from environment variables.
package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// Relational store holding the paypay_accounts table.
	DatabaseDSN  string `env:"DATABASE_URL,required"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"psql"`

	// Discord bot credentials and allow-lists.
	BotToken    string   `env:"DISCORD_BOT_TOKEN"`
	InspectorID string   `env:"ADMIN_USER_ID"`
	AdminIDs    []string `env:"ADMIN_USER_IDS" envSeparator:","`

	// Liveness listener.
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8000"`

	// PayPay API endpoint, overridable for testing.
	PayPayAPIURL string `env:"PAYPAY_API_URL" envDefault:"https://app.paypay.ne.jp"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse loads an optional .env file and reads the configuration from the
// environment. The panel admin set always contains the inspection admin.
func Parse(opts ...Option) (*Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.envFilePath != "" {
		// A missing env file is not an error, running purely on
		// environment variables is the common deployment.
		_ = godotenv.Load(o.envFilePath)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.InspectorID != "" && !contains(cfg.AdminIDs, cfg.InspectorID) {
		cfg.AdminIDs = append(cfg.AdminIDs, cfg.InspectorID)
	}

	return &cfg, nil
}

// ConfigureLogger sets the global logrus level from the configured string.
func ConfigureLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn(fmt.Sprintf("invalid log level '%s', using info", level))
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
