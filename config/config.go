package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Admin   AdminConfig   `yaml:"admin"`
	Pricing PricingConfig `yaml:"pricing"`
	Cabin   CabinConfig   `yaml:"cabin"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	FlightsFile string `yaml:"flights_file"`
	HistoryFile string `yaml:"history_file"`
	TicketsDir  string `yaml:"tickets_dir"`
}

type AdminConfig struct {
	Password string `yaml:"password"`
}

type PricingConfig struct {
	OccupancySurcharge float64 `yaml:"occupancy_surcharge"`
}

type CabinConfig struct {
	EconomySeats      int     `yaml:"economy_seats"`
	EconomyBasePrice  float64 `yaml:"economy_base_price"`
	BusinessSeats     int     `yaml:"business_seats"`
	BusinessBasePrice float64 `yaml:"business_base_price"`
}

type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// LoadConfig reads the YAML config. A missing file is not an error: the
// defaults describe the stock setup (flat files in the working directory,
// 30 economy + 10 business seats).
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Storage.FlightsFile == "" {
		c.Storage.FlightsFile = "flights.txt"
	}
	if c.Storage.HistoryFile == "" {
		c.Storage.HistoryFile = "bookingHistory.txt"
	}
	if c.Storage.TicketsDir == "" {
		c.Storage.TicketsDir = "tickets"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "sai123"
	}
	if c.Pricing.OccupancySurcharge == 0 {
		c.Pricing.OccupancySurcharge = 0.5
	}
	if c.Cabin.EconomySeats == 0 {
		c.Cabin.EconomySeats = 30
	}
	if c.Cabin.EconomyBasePrice == 0 {
		c.Cabin.EconomyBasePrice = 1000
	}
	if c.Cabin.BusinessSeats == 0 {
		c.Cabin.BusinessSeats = 10
	}
	if c.Cabin.BusinessBasePrice == 0 {
		c.Cabin.BusinessBasePrice = 2500
	}
	if c.Logging.File == "" {
		c.Logging.File = "flightdesk.log"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
