package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsTotal  *prometheus.CounterVec
	remindersTotal *prometheus.CounterVec
	stateWrites    *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_bookings_total",
			Help:        "Booking lifecycle events by resulting status",
			ConstLabels: constLabels,
		}, []string{"status"}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_reminders_total",
			Help:        "Reminder notifications by channel and outcome",
			ConstLabels: constLabels,
		}, []string{"channel", "outcome"}),
		stateWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_state_writes_total",
			Help:        "State blob writes by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.remindersTotal,
		m.stateWrites,
	)

	return m
}

// Handler возвращает HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest фиксирует один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// BookingEvent увеличивает счетчик событий бронирования (active, cancelled, completed)
func (m *Metrics) BookingEvent(status string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Add(float64(count))
}

// ReminderSent фиксирует отправку напоминания
func (m *Metrics) ReminderSent(channel string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.remindersTotal.WithLabelValues(channel, outcome).Inc()
}

// StateWrite фиксирует запись состояния
func (m *Metrics) StateWrite(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.stateWrites.WithLabelValues(outcome).Inc()
}
