package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery outcome labels
const (
	OutcomeDelivered     = "delivered"
	OutcomeNoChannel     = "no_channel"
	OutcomeChannelClosed = "channel_closed"
	OutcomeFailed        = "failed"
	OutcomeRelayed       = "relayed"
)

var (
	NotificationsPersisted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "edupath_notifications_persisted_total",
			Help: "Total number of notifications written to the store",
		},
	)

	NotificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edupath_notification_deliveries_total",
			Help: "Push attempts by outcome",
		},
		[]string{"outcome"},
	)

	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "edupath_ws_connections",
			Help: "Number of users with a registered live channel",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edupath_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordDelivery counts one push attempt.
func RecordDelivery(outcome string) {
	NotificationDeliveries.WithLabelValues(outcome).Inc()
}

// HTTPMiddleware observes request latency labelled by the matched route.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
