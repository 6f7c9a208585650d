package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Token               string  `env:"TOKEN,required,notEmpty"`
	OpenAIAPIKey        string  `env:"OPENAI_API_KEY,required,notEmpty"`
	AllowedUsers        []int64 `env:"ALLOWED_USERS"`
	DBPath              string  `env:"DB_PATH"                        envDefault:"db.sqlite"`
	DailyArticleCap     int64   `env:"ARTICLE_CAP"                    envDefault:"2"`
	LedgerRetentionDays int     `env:"LEDGER_RETENTION_DAYS"          envDefault:"30"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))
	return cfg
}
