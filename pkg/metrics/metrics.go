package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics coletores Prometheus do serviço.
// Um único registro por processo; o serviceName vira label constante.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     prometheus.Gauge
	dbConnsInUse    prometheus.Gauge
	dbConnsIdle     prometheus.Gauge

	reconcileRunsTotal    prometheus.Counter
	reconcileRepairsTotal *prometheus.CounterVec

	notificationsTotal *prometheus.CounterVec
}

// New cria e registra os coletores no registro padrão do Prometheus.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total de requisições HTTP processadas",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duração das requisições HTTP em segundos",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duração das queries no banco em segundos",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbConnsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Conexões abertas no pool",
			ConstLabels: constLabels,
		}),
		dbConnsInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Conexões do pool em uso",
			ConstLabels: constLabels,
		}),
		dbConnsIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Conexões do pool ociosas",
			ConstLabels: constLabels,
		}),

		reconcileRunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reconciliation_runs_total",
			Help:        "Total de varreduras de reconciliação executadas",
			ConstLabels: constLabels,
		}),
		reconcileRepairsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reconciliation_repairs_total",
			Help:        "Total de reparos aplicados pela reconciliação, por tipo",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Total de notificações despachadas, por evento e resultado",
			ConstLabels: constLabels,
		}, []string{"event", "outcome"}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbConnsOpen,
		m.dbConnsInUse,
		m.dbConnsIdle,
		m.reconcileRunsTotal,
		m.reconcileRepairsTotal,
		m.notificationsTotal,
	)

	return m
}

// ObserveHTTPRequest registra uma requisição HTTP concluída
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery registra a duração de uma query
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats atualiza os gauges do pool de conexões
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnsOpen.Set(float64(stats.OpenConnections))
	m.dbConnsInUse.Set(float64(stats.InUse))
	m.dbConnsIdle.Set(float64(stats.Idle))
}

// IncReconcileRun incrementa o contador de varreduras
func (m *Metrics) IncReconcileRun() {
	m.reconcileRunsTotal.Inc()
}

// AddReconcileRepairs soma reparos de um tipo (created, corrected, orphans_removed)
func (m *Metrics) AddReconcileRepairs(kind string, n int) {
	if n <= 0 {
		return
	}
	m.reconcileRepairsTotal.WithLabelValues(kind).Add(float64(n))
}

// IncNotification registra o resultado do envio de uma notificação
func (m *Metrics) IncNotification(event, outcome string) {
	m.notificationsTotal.WithLabelValues(event, outcome).Inc()
}
