package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	LeadsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_leads_created_total",
			Help: "Leads captured through the public forms",
		},
		[]string{"outcome"}, // created, duplicate
	)

	PaymentsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_payments_processed_total",
			Help: "Project payments completed through the portal",
		},
	)

	DigestMails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_digest_mails_total",
			Help: "Admin digest mails attempted",
		},
		[]string{"status"}, // sent, failed
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
