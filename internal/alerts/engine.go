package alerts

import (
	"fmt"
	"time"

	"price-tracker/internal/logger"
	"price-tracker/internal/metrics"
	"price-tracker/internal/models"

	"github.com/rs/zerolog"
)

const (
	// A price drop of at least this percentage fires an alert even when no
	// target price condition is met.
	dropThresholdPct = 5.0

	// An alert that fired is suppressed for this long.
	cooldown = 24 * time.Hour

	// Observations newer than this are restock candidates.
	restockWindow = time.Hour

	// History lookback for restock classification and the daily summary.
	lookbackWindow = 24 * time.Hour
)

// Store is the storage collaborator the engine reads alerts and price
// history from. Lookups that find nothing return (nil, nil).
type Store interface {
	GetActiveAlerts() ([]models.PriceAlert, error)
	GetLatestPrice(productID uint) (*models.Price, error)
	GetPreviousPrice(productID, excludingID uint) (*models.Price, error)
	GetProduct(id uint) (*models.Product, error)
	GetRetailer(id uint) (*models.Retailer, error)
	UpdateAlert(alert *models.PriceAlert) error
	CountActiveProducts() (int64, error)
	CountRecentPrices(since time.Time) (int64, error)
	QueryPricesSince(ts time.Time) ([]models.Price, error)
	QueryOldestPriceBefore(productID uint, ts time.Time) (*models.Price, error)
}

// Notifier delivers formatted messages downstream. Sends are fire-and-forget:
// the boolean result is logged and counted but never acted upon.
type Notifier interface {
	SendPriceDrop(n PriceDropNotification) bool
	SendRestock(n RestockNotification) bool
	SendDailySummary(s Summary) bool
}

// PriceDropNotification carries the fields of a fired price alert.
type PriceDropNotification struct {
	ProductName   string
	CurrentPrice  float64
	PreviousPrice *float64
	RetailerName  string
	ProductURL    string
	ImageURL      string
	TargetPrice   *float64
}

// RestockNotification carries the fields of a restock event.
type RestockNotification struct {
	ProductName  string
	RetailerName string
	ProductURL   string
	Price        float64
	ImageURL     string
}

// RestockItem summarizes one restocked product for caller reporting.
type RestockItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Summary is the daily aggregation. AvgPriceChange is a placeholder kept at
// 0.0 until a real computation is designed.
type Summary struct {
	ProductsTracked int64   `json:"products_tracked"`
	RecentUpdates   int64   `json:"recent_updates"`
	AvgPriceChange  float64 `json:"avg_price_change"`
}

// Engine evaluates price alerts against recorded observations. Evaluation
// time is always passed in by the caller; the engine never reads the wall
// clock, which keeps it deterministic under test.
//
// Overlapping invocations are not serialized: two concurrent checks may both
// read stale cooldown state and double-fire within the 24h window.
type Engine struct {
	store    Store
	notifier Notifier
	log      zerolog.Logger
}

func NewEngine(store Store, notifier Notifier) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
		log:      logger.WithComponent("alerts"),
	}
}

// CheckAlerts evaluates every active alert against the two most recent
// observations of its product and returns the ids of alerts that fired.
func (e *Engine) CheckAlerts(now time.Time) ([]uint, error) {
	activeAlerts, err := e.store.GetActiveAlerts()
	if err != nil {
		return nil, fmt.Errorf("failed to load active alerts: %w", err)
	}

	triggered := []uint{}
	for i := range activeAlerts {
		alert := &activeAlerts[i]
		metrics.AlertsEvaluated.Inc()

		latest, err := e.store.GetLatestPrice(alert.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest price for product %d: %w", alert.ProductID, err)
		}
		if latest == nil {
			// No observation yet; not an error
			continue
		}

		previous, err := e.store.GetPreviousPrice(alert.ProductID, latest.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load previous price for product %d: %w", alert.ProductID, err)
		}

		if !shouldFire(alert, latest, previous, now) {
			continue
		}

		if err := e.fire(alert, latest, previous, now); err != nil {
			return nil, err
		}
		triggered = append(triggered, alert.ID)
	}

	return triggered, nil
}

// shouldFire applies the condition rules in order: threshold condition,
// then the independent percentage-drop path, with the cooldown as the
// final gate.
func shouldFire(alert *models.PriceAlert, latest, previous *models.Price, now time.Time) bool {
	conditionMet := false

	if alert.TargetPrice != nil {
		switch alert.Condition {
		case models.ConditionBelow:
			conditionMet = latest.Price <= *alert.TargetPrice
		case models.ConditionAbove:
			conditionMet = latest.Price >= *alert.TargetPrice
		}
	}

	// Significant drops fire even without a target price. A previous price
	// of zero skips the check rather than dividing by it.
	if !conditionMet && previous != nil && previous.Price != 0 {
		dropPct := (previous.Price - latest.Price) / previous.Price * 100
		if dropPct >= dropThresholdPct {
			conditionMet = true
		}
	}

	// Cooldown: never re-trigger within 24 hours of the last firing
	if alert.LastTriggered != nil && now.Sub(*alert.LastTriggered) < cooldown {
		conditionMet = false
	}

	return conditionMet
}

// fire commits the cooldown bookkeeping and then attempts delivery. The
// registry mutation is persisted before the notification is sent; a failed
// delivery is logged and counted, never rolled back.
func (e *Engine) fire(alert *models.PriceAlert, latest, previous *models.Price, now time.Time) error {
	alert.LastTriggered = &now
	alert.TriggerCount++
	if err := e.store.UpdateAlert(alert); err != nil {
		return fmt.Errorf("failed to persist alert %d: %w", alert.ID, err)
	}
	metrics.AlertsFired.Inc()

	product, err := e.store.GetProduct(alert.ProductID)
	if err != nil {
		return fmt.Errorf("failed to load product %d: %w", alert.ProductID, err)
	}
	if product == nil {
		e.log.Warn().Uint("alert_id", alert.ID).Uint("product_id", alert.ProductID).
			Msg("product not found for fired alert, skipping notification")
		return nil
	}

	retailerName := "Unknown"
	if retailer, err := e.store.GetRetailer(latest.RetailerID); err == nil && retailer != nil {
		retailerName = retailer.Name
	}

	var previousPrice *float64
	if previous != nil {
		previousPrice = &previous.Price
	}

	sent := e.notifier.SendPriceDrop(PriceDropNotification{
		ProductName:   product.Name,
		CurrentPrice:  latest.Price,
		PreviousPrice: previousPrice,
		RetailerName:  retailerName,
		ProductURL:    productURL(latest, product),
		ImageURL:      product.ImageURL,
		TargetPrice:   alert.TargetPrice,
	})
	if !sent {
		e.log.Warn().Uint("alert_id", alert.ID).Str("product", product.Name).
			Msg("price drop notification not delivered")
	} else {
		e.log.Info().Uint("alert_id", alert.ID).Str("product", product.Name).
			Float64("price", latest.Price).Msg("alert fired")
	}
	return nil
}

// DetectRestocks finds products whose only observations are recent: an
// observation within the last hour with nothing older than 24 hours is
// treated as a restock. This heuristic also matches genuinely new products
// with no history yet; that is an accepted approximation.
func (e *Engine) DetectRestocks(now time.Time) ([]RestockItem, error) {
	recent, err := e.store.QueryPricesSince(now.Add(-restockWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load recent prices: %w", err)
	}

	restocked := []RestockItem{}
	for i := range recent {
		price := &recent[i]

		old, err := e.store.QueryOldestPriceBefore(price.ProductID, now.Add(-lookbackWindow))
		if err != nil {
			return nil, fmt.Errorf("failed to load price history for product %d: %w", price.ProductID, err)
		}
		if old != nil {
			// Had prices before the lookback window; not a restock
			continue
		}

		product, err := e.store.GetProduct(price.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %d: %w", price.ProductID, err)
		}
		if product == nil {
			e.log.Warn().Uint("product_id", price.ProductID).
				Msg("product not found for restock candidate, skipping")
			continue
		}

		retailerName := "Unknown"
		if retailer, err := e.store.GetRetailer(price.RetailerID); err == nil && retailer != nil {
			retailerName = retailer.Name
		}

		metrics.RestocksDetected.Inc()
		if !e.notifier.SendRestock(RestockNotification{
			ProductName:  product.Name,
			RetailerName: retailerName,
			ProductURL:   productURL(price, product),
			Price:        price.Price,
			ImageURL:     product.ImageURL,
		}) {
			e.log.Warn().Str("product", product.Name).Msg("restock notification not delivered")
		}

		restocked = append(restocked, RestockItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     price.Price,
		})
	}

	return restocked, nil
}

// GenerateSummary aggregates tracking activity over the last 24 hours and
// dispatches one summary notification.
func (e *Engine) GenerateSummary(now time.Time) (*Summary, error) {
	productsTracked, err := e.store.CountActiveProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to count active products: %w", err)
	}

	recentUpdates, err := e.store.CountRecentPrices(now.Add(-lookbackWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent prices: %w", err)
	}

	summary := Summary{
		ProductsTracked: productsTracked,
		RecentUpdates:   recentUpdates,
		// TODO: compute a real average once price-change tracking lands
		AvgPriceChange: 0.0,
	}

	if !e.notifier.SendDailySummary(summary) {
		e.log.Warn().Msg("daily summary notification not delivered")
	}

	return &summary, nil
}

// productURL prefers the listing the observation came from, falling back to
// the product's own source URL.
func productURL(price *models.Price, product *models.Product) string {
	if price.ListingURL != "" {
		return price.ListingURL
	}
	return product.SourceURL
}
