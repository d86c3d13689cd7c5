// Package conf loads the stock-sheets configuration from a .env file and the
// process environment.
package conf

import (
	"fmt"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Environment variable keys.
const (
	EnvSpreadsheetID      = "SPREADSHEET_ID"
	EnvServiceAccountFile = "SERVICE_ACCOUNT_FILE"
	EnvSheetName          = "SHEET_NAME"
	EnvOutputCSV          = "OUTPUT_CSV"
	EnvWatchSchedule      = "WATCH_SCHEDULE"
)

type Config struct {
	SpreadsheetID      string `env:"SPREADSHEET_ID"`
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE"`
	SheetName          string `env:"SHEET_NAME" default:"STOCK SHEET (Add New Item here)"`
	OutputCSV          string `env:"OUTPUT_CSV" default:"replenishment_items.csv"`
	WatchSchedule      string `env:"WATCH_SCHEDULE" default:"0 6 * * *"`
}

// Load reads the .env file into the process environment and maps the
// environment variables to a Config. A missing default .env file is not an
// error - the configuration falls back to the plain environment - but an
// explicitly named envfile has to exist. Values already set in the
// environment take precedence over the .env file.
func Load(envfile string) (*Config, error) {
	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil {
			return nil, fmt.Errorf("unable to load env file %s (%v)", envfile, err)
		}
	} else {
		godotenv.Load()
	}

	cfg := Config{}
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("unable to load environment variables (%v)", err)
	}

	return &cfg, nil
}

// Validate checks that the required configuration values are present. It is
// invoked after any command line overrides have been applied.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return ErrMissingSpreadsheetID
	}

	if c.ServiceAccountFile == "" {
		return ErrMissingServiceAccountFile
	}

	return nil
}
