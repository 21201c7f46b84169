package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	requestCreated   *prometheus.CounterVec
	garageAssigned   *prometheus.CounterVec
	useCaseTotal     *prometheus.CounterVec
	useCaseDuration  *prometheus.HistogramVec
	httpDuration     *prometheus.HistogramVec
	staleSwept       prometheus.Counter
	geoIndexFallback prometheus.Counter
	eventsProcessed  *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		requestCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dispatch_request_created_total",
			Help:        "Total service requests created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		garageAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dispatch_garage_assigned_total",
			Help:        "Total requests claimed by a garage.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		staleSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "dispatch_stale_requests_swept_total",
			Help:        "Total stale assigned requests removed by the sweeper.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		geoIndexFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "dispatch_geo_index_fallback_total",
			Help:        "Candidate lookups that fell back to a full scan.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		eventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_processed_total",
			Help:        "Total lifecycle events processed by the notifier.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.requestCreated,
		m.garageAssigned,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.staleSwept,
		m.geoIndexFallback,
		m.eventsProcessed,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordRequestCreated(status string) {
	p.requestCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordGarageAssigned(status string) {
	p.garageAssigned.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) RecordStaleRequestsSwept(count int) {
	p.staleSwept.Add(float64(count))
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncGeoIndexFallback() {
	p.geoIndexFallback.Inc()
}

func (p *Prometheus) IncEventsProcessed(status string) {
	p.eventsProcessed.WithLabelValues(status).Inc()
}
