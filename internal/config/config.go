package config

import (
	"os"
)

// DefaultCronSecret is the placeholder shipped in .env.example. While the
// configured secret still equals this value the webhook auth check is
// skipped (auth-disabled mode for local development).
const DefaultCronSecret = "your-secret-key-change-in-production"

type Config struct {
	DatabaseURL string
	Port        string
	Environment string
	LogLevel    string

	// Webhook authentication
	CronSecret string

	// Telegram bot credentials; both empty means notifications are a no-op
	TelegramBotToken string
	TelegramChatID   string
}

func Load() *Config {
	// Default MySQL connection string for local development
	defaultDSN := "root:password@tcp(127.0.0.1:3306)/price_tracker?charset=utf8mb4&parseTime=True&loc=Local"

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		CronSecret: getEnv("CRON_SECRET", DefaultCronSecret),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
