package metrics

import (
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/token"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

var (
	once          sync.Once
	metricsRouter *chi.Mux

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)
	poolOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pool_operations_total",
			Help: "Number of pool operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	poolTotalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pool_total_staked_tokens",
			Help: "Total stake held by the pool, in whole tokens.",
		},
	)
	poolBalanceGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pool_balance_tokens",
			Help: "Token balance of the pool, in whole tokens.",
		},
	)
	queueMessageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_processed_total",
			Help: "Number of queue messages processed by queue and outcome.",
		},
		[]string{"queue", "outcome"},
	)
	queueProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queue_message_processing_duration_seconds",
			Help:    "Histogram of queue message handling durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"queue"},
	)
)

// Init registers the metrics and serves them on metricsAddr.
func Init(metricsAddr string) {
	once.Do(func() {
		registerMetrics()
		initMetricsRouter(metricsAddr)
	})
}

func initMetricsRouter(metricsAddr string) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	prometheus.MustRegister(
		httpRequestDurationHistogram,
		poolOperationCounter,
		poolTotalStakedGauge,
		poolBalanceGauge,
		queueMessageCounter,
		queueProcessingDuration,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

func RecordPoolOperation(operation string, err error) {
	outcome := Success
	if err != nil {
		outcome = Error
	}
	poolOperationCounter.WithLabelValues(operation, outcome.String()).Inc()
}

func UpdatePoolGauges(totalStaked, poolBalance *uint256.Int) {
	poolTotalStakedGauge.Set(toWholeTokens(totalStaked))
	poolBalanceGauge.Set(toWholeTokens(poolBalance))
}

// StartQueueMessageTimer measures the handling of one message. The returned
// func records the duration and the outcome.
func StartQueueMessageTimer(queueName string) func(err error) {
	startTime := time.Now()
	return func(err error) {
		queueProcessingDuration.WithLabelValues(queueName).Observe(time.Since(startTime).Seconds())
		outcome := Success
		if err != nil {
			outcome = Error
		}
		queueMessageCounter.WithLabelValues(queueName, outcome.String()).Inc()
	}
}

var tokenUnit = new(big.Float).SetInt(token.FromTokens(1).ToBig())

func toWholeTokens(amount *uint256.Int) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(amount.ToBig()), tokenUnit).Float64()
	return f
}
