package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Support-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Reply generations by provider and outcome ("ok" or an error kind)
	ReplyGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "reply_generations_total",
			Help:      "Total number of reply generations by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// LLM call latency
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "llm_request_duration_seconds",
			Help:      "Completion call duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// Persisted messages
	MessagesPersistedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "messages_persisted_total",
			Help:      "Total number of stored chat messages",
		},
		[]string{"sender"},
	)

	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "conversations_created_total",
			Help:      "Total number of conversations created",
		},
	)

	// Database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "support_api",
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query_type"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordReplyGeneration records the outcome of a completion call. An empty kind counts as "ok".
func RecordReplyGeneration(provider, kind string, duration float64) {
	outcome := kind
	if outcome == "" {
		outcome = "ok"
	}
	ReplyGenerationsTotal.WithLabelValues(provider, outcome).Inc()
	LLMRequestDuration.WithLabelValues(provider).Observe(duration)
}

// RecordMessagePersisted records a stored message
func RecordMessagePersisted(sender string) {
	MessagesPersistedTotal.WithLabelValues(sender).Inc()
}

// RecordConversationCreated records a new conversation
func RecordConversationCreated() {
	ConversationsCreatedTotal.Inc()
}

// RecordDBQuery records database query duration
func RecordDBQuery(queryType string, duration float64) {
	DBQueryDuration.WithLabelValues(queryType).Observe(duration)
}
