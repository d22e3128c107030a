package notify

import (
	"fmt"
	"time"

	"price-tracker/internal/alerts"
	"price-tracker/internal/logger"
	"price-tracker/internal/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers alert messages through the Telegram bot API.
// When bot token or chat id are missing every send is a logged no-op that
// returns false. Sends block for at most 30 seconds and are not retried.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *resty.Client
	log      zerolog.Logger
}

func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client:   client,
		log:      logger.WithComponent("telegram"),
	}
}

func (t *TelegramNotifier) configured() bool {
	return t.botToken != "" && t.chatID != ""
}

// SendPriceDrop sends a price drop alert message.
func (t *TelegramNotifier) SendPriceDrop(n alerts.PriceDropNotification) bool {
	if !t.configured() {
		t.log.Warn().Msg("telegram not configured, set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
		return false
	}

	message := "🚨 *Price Drop Alert*\n\n"
	message += fmt.Sprintf("*%s*\n", n.ProductName)
	message += fmt.Sprintf("💰 Current: *$%.2f*\n", n.CurrentPrice)
	if n.PreviousPrice != nil && *n.PreviousPrice > n.CurrentPrice {
		dropPct := (*n.PreviousPrice - n.CurrentPrice) / *n.PreviousPrice * 100
		message += fmt.Sprintf("📉 Down %.1f%% from $%.2f\n", dropPct, *n.PreviousPrice)
	}
	if n.TargetPrice != nil {
		message += fmt.Sprintf("🎯 Target was: $%.2f\n", *n.TargetPrice)
	}
	message += fmt.Sprintf("🏪 %s\n\n", n.RetailerName)
	message += fmt.Sprintf("[View Deal](%s)", n.ProductURL)

	return t.sendMessage("price_drop", message, false)
}

// SendRestock sends a back-in-stock alert message.
func (t *TelegramNotifier) SendRestock(n alerts.RestockNotification) bool {
	if !t.configured() {
		return false
	}

	message := "📦 *Back in Stock*\n\n"
	message += fmt.Sprintf("*%s*\n", n.ProductName)
	if n.Price > 0 {
		message += fmt.Sprintf("💰 $%.2f\n", n.Price)
	}
	message += fmt.Sprintf("🏪 %s\n\n", n.RetailerName)
	message += fmt.Sprintf("[Buy Now](%s)", n.ProductURL)

	return t.sendMessage("restock", message, false)
}

// SendDailySummary sends the daily tracking report.
func (t *TelegramNotifier) SendDailySummary(s alerts.Summary) bool {
	if !t.configured() {
		return false
	}

	message := "📊 *Daily Price Tracker Summary*\n\n"
	message += fmt.Sprintf("Products tracked: %d\n", s.ProductsTracked)
	message += fmt.Sprintf("Recent updates: %d\n", s.RecentUpdates)
	message += fmt.Sprintf("Avg price change: %.1f%%\n", s.AvgPriceChange)
	message += fmt.Sprintf("\n_Last updated: %s_", time.Now().Format("2006-01-02 15:04"))

	return t.sendMessage("summary", message, true)
}

func (t *TelegramNotifier) sendMessage(kind, text string, disablePreview bool) bool {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id":                  t.chatID,
			"text":                     text,
			"parse_mode":               "Markdown",
			"disable_web_page_preview": disablePreview,
		}).
		Post(fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, t.botToken))

	if err != nil {
		metrics.NotificationsFailed.WithLabelValues(kind).Inc()
		t.log.Error().Err(err).Str("kind", kind).Msg("failed to send telegram message")
		return false
	}
	if resp.StatusCode() != 200 {
		metrics.NotificationsFailed.WithLabelValues(kind).Inc()
		t.log.Error().Int("status", resp.StatusCode()).Str("kind", kind).
			Str("body", resp.String()).Msg("telegram API error")
		return false
	}

	metrics.NotificationsSent.WithLabelValues(kind).Inc()
	return true
}
