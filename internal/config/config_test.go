package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CronSecret != DefaultCronSecret {
		t.Errorf("expected placeholder cron secret, got %q", cfg.CronSecret)
	}
	if cfg.TelegramBotToken != "" {
		t.Errorf("expected empty telegram token by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CRON_SECRET", "s3cret")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.CronSecret != "s3cret" {
		t.Errorf("expected overridden cron secret, got %q", cfg.CronSecret)
	}
	if cfg.TelegramBotToken != "bot-token" || cfg.TelegramChatID != "12345" {
		t.Errorf("expected telegram credentials from env")
	}
}
