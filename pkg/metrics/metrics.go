package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the service's prometheus collectors. HTTP collectors are fed
// by the gin middleware; domain counters are incremented by the services.
type Metrics struct {
	registry *prometheus.Registry

	reqCount   *prometheus.CounterVec
	reqLatency *prometheus.HistogramVec

	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter
	CheckoutsOK       prometheus.Counter
	CheckoutsFailed   prometheus.Counter
	PaymentsDeclined  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.reqCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Count of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	m.reqLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	m.BookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gym_bookings_created_total",
		Help: "Bookings created through checkout.",
	})
	m.BookingsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gym_bookings_cancelled_total",
		Help: "Bookings cancelled by members or admins.",
	})
	m.CheckoutsOK = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gym_checkouts_processed_total",
		Help: "Checkouts that committed successfully.",
	})
	m.CheckoutsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gym_checkouts_failed_total",
		Help: "Checkouts aborted by validation or payment failure.",
	})
	m.PaymentsDeclined = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gym_payments_declined_total",
		Help: "Simulated payment declines.",
	})

	m.registry.MustRegister(
		m.reqCount, m.reqLatency,
		m.BookingsCreated, m.BookingsCancelled,
		m.CheckoutsOK, m.CheckoutsFailed, m.PaymentsDeclined,
	)
	return m
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.reqCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.reqLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Serve exposes /metrics on its own listener; it blocks, run in a goroutine.
func (m *Metrics) Serve(addr string, log *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorw("metrics listener stopped", "addr", addr, "err", err)
	}
}
