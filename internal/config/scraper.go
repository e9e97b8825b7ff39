package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type ScraperConfig struct {
	BatchSize       int           `env:"SCRAPE_BATCH_SIZE" envDefault:"5"`
	BatchDelay      time.Duration `env:"SCRAPE_BATCH_DELAY" envDefault:"2s"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	BackfillDays    int           `env:"BACKFILL_DAYS" envDefault:"7"`
	JobHistoryLimit int           `env:"JOB_HISTORY_LIMIT" envDefault:"50"`
}

func LoadScraper() (ScraperConfig, error) {
	var cfg ScraperConfig
	err := env.Parse(&cfg)
	return cfg, err
}
