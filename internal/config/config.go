package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the server.
type Config struct {
	ServerAddr      string
	DatabaseURL     string
	DefaultPageSize int
	MaxPageSize     int
	DigestInterval  time.Duration
	TelegramToken   string
	TelegramChatID  int64
}

// Load reads configuration from environment variables with sane defaults.
// All settings are optional; the digest job stays off unless an interval
// is configured.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "taskboard.db")
	v.SetDefault("DEFAULT_PAGE_SIZE", 10)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("DIGEST_INTERVAL_HOURS", 0)
	v.SetDefault("TELEGRAM_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", 0)

	cfg := Config{
		ServerAddr:      v.GetString("SERVER_ADDR"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DefaultPageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:     v.GetInt("MAX_PAGE_SIZE"),
		DigestInterval:  time.Duration(v.GetInt("DIGEST_INTERVAL_HOURS")) * time.Hour,
		TelegramToken:   v.GetString("TELEGRAM_TOKEN"),
		TelegramChatID:  v.GetInt64("TELEGRAM_CHAT_ID"),
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}

	return cfg, nil
}
