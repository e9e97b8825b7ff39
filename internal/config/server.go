package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`
	RedisURL     string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"data/store.json"`

	StatsAPIBaseURL string `env:"STATS_API_BASE_URL" envDefault:"https://site.api.espn.com/apis/site/v2/sports/baseball/mlb"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
