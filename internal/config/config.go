package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"BankSync"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"banksync"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Sync struct {
		// LookbackDays is how far back each scrape asks the provider for
		// transactions.
		LookbackDays int `envconfig:"SYNC_LOOKBACK_DAYS" default:"90"`

		// NightlySchedule is a cron expression evaluated in Timezone.
		NightlySchedule string `envconfig:"SYNC_NIGHTLY_SCHEDULE" default:"0 3 * * *"`
		Timezone        string `envconfig:"SYNC_TIMEZONE" default:"Asia/Jerusalem"`

		// ScraperCommand is the external scraper bridge executable.
		ScraperCommand string `envconfig:"SCRAPER_COMMAND" default:"bank-scraper"`

		// RulesPath optionally points at a TOML category rules file. When
		// empty the compiled-in rules are used.
		RulesPath string `envconfig:"CATEGORY_RULES_PATH"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
