package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AlertsEvaluated counts active alerts examined by batch checks
	AlertsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_tracker_alerts_evaluated_total",
		Help: "Total number of alert evaluations performed",
	})

	// AlertsFired counts alerts that triggered
	AlertsFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_tracker_alerts_fired_total",
		Help: "Total number of alerts that fired",
	})

	// RestocksDetected counts restock events classified by the engine
	RestocksDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_tracker_restocks_detected_total",
		Help: "Total number of restock events detected",
	})

	// NotificationsSent counts successful Telegram deliveries by kind
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "price_tracker_notifications_sent_total",
		Help: "Total number of notifications delivered successfully",
	}, []string{"kind"})

	// NotificationsFailed counts failed Telegram deliveries by kind
	NotificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "price_tracker_notifications_failed_total",
		Help: "Total number of notification deliveries that failed",
	}, []string{"kind"})

	// HTTPRequestDuration observes request latency per route and status
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "price_tracker_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
