// Package metrics exposes the server's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry bundles the server's metric collectors around a private
// prometheus registry so tests can create isolated instances.
type Registry struct {
	registry *prometheus.Registry

	HeartbeatsTotal    *prometheus.CounterVec
	CommandsDispatched prometheus.Counter
	RunsFinishedTotal  *prometheus.CounterVec
	CampaignsTotal     *prometheus.CounterVec
	EventsAppended     prometheus.Counter
	SSESubscribers     prometheus.Gauge
	HTTPDuration       *prometheus.HistogramVec
}

// New creates a Registry with all collectors registered.
func New() *Registry {
	r := prometheus.NewRegistry()
	m := &Registry{
		registry: r,
		HeartbeatsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitt_heartbeats_total",
			Help: "Heartbeats received, by agent.",
		}, []string{"agent"}),
		CommandsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kitt_commands_dispatched_total",
			Help: "Commands handed to agents via heartbeat.",
		}),
		RunsFinishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitt_runs_finished_total",
			Help: "Runs that reached a terminal state, by status.",
		}, []string{"status"}),
		CampaignsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kitt_campaigns_total",
			Help: "Campaigns that reached a terminal state, by status.",
		}, []string{"status"}),
		EventsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kitt_stream_events_total",
			Help: "Events appended to the durable stream.",
		}),
		SSESubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitt_sse_subscribers",
			Help: "Currently connected SSE subscribers.",
		}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kitt_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HeartbeatsTotal,
		m.CommandsDispatched,
		m.RunsFinishedTotal,
		m.CampaignsTotal,
		m.EventsAppended,
		m.SSESubscribers,
		m.HTTPDuration,
	)
	return m
}

// Gatherer exposes the registry for the /metrics handler.
func (m *Registry) Gatherer() prometheus.Gatherer {
	return m.registry
}
