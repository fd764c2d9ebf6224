package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "interaction_bot"

// Interaction outcomes recorded by Metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the bot's prometheus collectors on their own registry.
type Metrics struct {
	registry         *prometheus.Registry
	interactions     *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	heartbeatLatency prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		interactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "interactions_total",
			Help:      "The number of handled interactions by identifier and outcome",
		}, []string{"identifier", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "interaction_duration_seconds",
			Help:      "The time it took to handle an interaction",
			Buckets:   prometheus.DefBuckets,
		}, []string{"identifier"}),
		heartbeatLatency: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "discord_heartbeat_latency_seconds",
			Help:      "The latency of the last Discord heartbeat",
		}),
	}
}

// ObserveInteraction records a handled interaction.
func (m *Metrics) ObserveInteraction(identifier string, outcome string, elapsed time.Duration) {
	m.interactions.WithLabelValues(identifier, outcome).Inc()
	m.duration.WithLabelValues(identifier).Observe(elapsed.Seconds())
}

func (m *Metrics) SetHeartbeatLatency(latency time.Duration) {
	m.heartbeatLatency.Set(latency.Seconds())
}

// Handler serves the metrics in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NewSampler creates a stopped scheduler that calls sample every interval.
// Call Start to begin sampling and Shutdown to stop it.
func NewSampler(interval time.Duration, sample func()) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(sample),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to schedule sampling job: %w", err)
	}

	return scheduler, nil
}
