package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                 sync.Once
	metricsRouter        *chi.Mux
	oracleClientLatency  *prometheus.HistogramVec
	dbLatency            *prometheus.HistogramVec
	tipEventCounter      *prometheus.CounterVec
	expenseSettleCounter *prometheus.CounterVec
	allocationDenials    prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	oracleClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_client_latency_seconds",
			Help:    "Histogram of balance oracle call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	tipEventCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tip_event_count",
			Help: "Number of tip events consumed, split by handling outcome",
		},
		[]string{"outcome"},
	)

	expenseSettleCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expense_settle_count",
			Help: "Number of expense settlements split by operation type and final status",
		},
		[]string{"operation_type", "status"},
	)

	allocationDenials = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allocation_denial_count",
			Help: "Number of admin allocations denied by the wallet balance check",
		},
	)

	prometheus.MustRegister(
		oracleClientLatency,
		dbLatency,
		tipEventCounter,
		expenseSettleCounter,
		allocationDenials,
	)
}

func RecordOracleClientLatency(d time.Duration, method string, failure bool) {
	if oracleClientLatency == nil {
		return
	}
	status := Success
	if failure {
		status = Error
	}

	oracleClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func IncTipEvent(outcome string) {
	if tipEventCounter == nil {
		return
	}
	tipEventCounter.WithLabelValues(outcome).Inc()
}

func IncExpenseSettled(operationType, status string) {
	if expenseSettleCounter == nil {
		return
	}
	expenseSettleCounter.WithLabelValues(operationType, status).Inc()
}

func IncAllocationDenied() {
	if allocationDenials == nil {
		return
	}
	allocationDenials.Inc()
}
