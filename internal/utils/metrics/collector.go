// internal/utils/metrics/collector.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pump_sdk"

// Collector holds the SDK's Prometheus collectors.
type Collector struct {
	rpcRequests *prometheus.CounterVec
	rpcLatency  *prometheus.HistogramVec
	rpcRetries  *prometheus.CounterVec
	cache       *prometheus.CounterVec
	quotes      *prometheus.CounterVec
}

// NewCollector создает коллектор и регистрирует метрики в reg.
// При reg == nil используется prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		rpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC requests by method and status",
			},
			[]string{"method", "status"},
		),
		rpcLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_latency_seconds",
				Help:      "RPC request latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method"},
		),
		rpcRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_retries_total",
				Help:      "Number of retried RPC attempts",
			},
			[]string{"method"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_cache_requests_total",
				Help:      "Account cache lookups by account and result",
			},
			[]string{"account", "result"},
		),
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Quote evaluations by kind and status",
			},
			[]string{"kind", "status"},
		),
	}

	reg.MustRegister(c.rpcRequests, c.rpcLatency, c.rpcRetries, c.cache, c.quotes)
	return c
}

// Reset сбрасывает все метрики (полезно для тестирования)
func (c *Collector) Reset() {
	c.rpcRequests.Reset()
	c.rpcLatency.Reset()
	c.rpcRetries.Reset()
	c.cache.Reset()
	c.quotes.Reset()
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// RecordRPC records one finished RPC call.
func (c *Collector) RecordRPC(method string, duration time.Duration, success bool) {
	if c == nil {
		return
	}
	c.rpcRequests.WithLabelValues(method, status(success)).Inc()
	c.rpcLatency.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRetry counts a retried RPC attempt.
func (c *Collector) RecordRetry(method string) {
	if c == nil {
		return
	}
	c.rpcRetries.WithLabelValues(method).Inc()
}

// RecordCache counts a cache hit or miss for an account kind.
func (c *Collector) RecordCache(account string, hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cache.WithLabelValues(account, result).Inc()
}

// RecordQuote counts a quote evaluation.
func (c *Collector) RecordQuote(kind string, success bool) {
	if c == nil {
		return
	}
	c.quotes.WithLabelValues(kind, status(success)).Inc()
}
