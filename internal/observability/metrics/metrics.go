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

func (o Outcome) String() string {
	return string(o)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	tokenClientLatency          *prometheus.HistogramVec
	dbLatency                   *prometheus.HistogramVec
	transitionDurationHistogram *prometheus.HistogramVec
	totalStakedGauge            *prometheus.GaugeVec
	queueSendErrorCounter       prometheus.Counter
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
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and registers the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	tokenClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_client_latency_seconds",
			Help:    "Histogram of token contract client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "Histogram of transition archive operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	transitionDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_transition_duration_seconds",
			Help:    "Histogram of staking transaction durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"kind", "variant", "status"},
	)

	totalStakedGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "staking_total_staked",
			Help: "Aggregate staked amount/price currently recorded in the ledger.",
		},
		[]string{"variant"},
	)

	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	prometheus.MustRegister(
		tokenClientLatency,
		dbLatency,
		transitionDurationHistogram,
		totalStakedGauge,
		queueSendErrorCounter,
	)
}

func ObserveTokenClientLatency(method string, outcome Outcome, seconds float64) {
	if tokenClientLatency == nil {
		return
	}
	tokenClientLatency.WithLabelValues(method, outcome.String()).Observe(seconds)
}

func ObserveDbLatency(method string, outcome Outcome, seconds float64) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcome.String()).Observe(seconds)
}

func ObserveTransitionDuration(kind, variant string, outcome Outcome, seconds float64) {
	if transitionDurationHistogram == nil {
		return
	}
	transitionDurationHistogram.WithLabelValues(kind, variant, outcome.String()).Observe(seconds)
}

func SetTotalStaked(variant string, value uint64) {
	if totalStakedGauge == nil {
		return
	}
	totalStakedGauge.WithLabelValues(variant).Set(float64(value))
}

func RecordQueueSendError() {
	if queueSendErrorCounter == nil {
		return
	}
	queueSendErrorCounter.Inc()
}
