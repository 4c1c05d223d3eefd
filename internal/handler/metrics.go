package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order event processing attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of order event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	cartClearFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "cart_clear_failures_total",
			Help:      "Orders persisted while the cart could not be cleared",
		},
	)

	invoicesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "invoices",
			Name:      "requests_total",
			Help:      "Total number of invoice requests by result",
		},
		[]string{"result"},
	)

	invoiceSinkFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "invoices",
			Name:      "sink_failures_total",
			Help:      "Total number of invoice sink failures by sink",
		},
		[]string{"sink"},
	)

	invoiceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "invoices",
			Name:      "render_duration_seconds",
			Help:      "Histogram of invoice request durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,

		checkoutsTotal,
		cartClearFailures,
		invoicesTotal,
		invoiceSinkFailures,
		invoiceDuration,
	)
}
