package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/kstaniek/go-can-prio/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collectors
var (
	TxPushed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txqueue_pushed_total",
		Help: "Total identifier registers accepted into the transmit queue.",
	})
	TxPopped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txqueue_popped_total",
		Help: "Total identifier registers drained from the transmit queue in priority order.",
	})
	TxRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txqueue_rejected_total",
		Help: "Total pushes rejected because the queue was full and the entry outranked no resident.",
	})
	TxEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txqueue_evicted_total",
		Help: "Total residents evicted from a full queue by a higher-priority push.",
	})
	TxQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "txqueue_depth",
		Help: "Current number of queued identifier registers.",
	})
	MalformedWords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "malformed_words_total",
		Help: "Total rejected register words (bad syntax, reserved bits set, id out of range).",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})

	readinessMu sync.RWMutex
	readinessFn func() bool
)

// StartHTTP serves Prometheus metrics at /metrics plus a /ready probe.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters for easy logging (avoid Prometheus scraping in-process)
var (
	localPushed    uint64
	localPopped    uint64
	localRejected  uint64
	localEvicted   uint64
	localDepth     uint64
	localMalformed uint64
)

// Snapshot is a cheap copy of local counters.
type Snapshot struct {
	Pushed    uint64
	Popped    uint64
	Rejected  uint64
	Evicted   uint64
	Depth     uint64
	Malformed uint64
}

func Snap() Snapshot {
	return Snapshot{
		Pushed:    atomic.LoadUint64(&localPushed),
		Popped:    atomic.LoadUint64(&localPopped),
		Rejected:  atomic.LoadUint64(&localRejected),
		Evicted:   atomic.LoadUint64(&localEvicted),
		Depth:     atomic.LoadUint64(&localDepth),
		Malformed: atomic.LoadUint64(&localMalformed),
	}
}

// Wrapper helpers to keep call sites simple.
func IncTxPushed() {
	TxPushed.Inc()
	atomic.AddUint64(&localPushed, 1)
}

func IncTxPopped() {
	TxPopped.Inc()
	atomic.AddUint64(&localPopped, 1)
}

func IncTxRejected() {
	TxRejected.Inc()
	atomic.AddUint64(&localRejected, 1)
}

func IncTxEvicted() {
	TxEvicted.Inc()
	atomic.AddUint64(&localEvicted, 1)
}

func IncMalformed() {
	MalformedWords.Inc()
	atomic.AddUint64(&localMalformed, 1)
}

// SetQueueDepth records the queue depth after a push or pop.
func SetQueueDepth(n int) {
	TxQueueDepth.Set(float64(n))
	atomic.StoreUint64(&localDepth, uint64(n))
}

// InitBuildInfo sets the build info gauge (should be called once at startup).
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil { // if not set yet, treat as ready so metrics endpoint doesn't flap
		return true
	}
	return fn()
}
