package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken  string
	DatabaseURL    string
	ReminderChatID int64 // channel that receives payment-day reminders
	LogLevel       string
	Environment    string
	CronSpecDaily  string // daily payment-day reminder check
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	chatIDStr := os.Getenv("REMINDER_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("REMINDER_CHAT_ID is not set")
	}
	cfg.ReminderChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_CHAT_ID: %w", err)
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDaily = os.Getenv("CRON_SPEC_DAILY_REMINDER")
	if cfg.CronSpecDaily == "" {
		cfg.CronSpecDaily = "0 9 * * *" // Default: 9:00 AM daily
	}

	return cfg, nil
}
