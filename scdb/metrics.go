package scdb

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects SCDB's operational counters: blocks processed, soft
// rejects, tau resets, and MT-sync search outcomes. Grounded in the
// teacher pack's prometheus.NewCounterVec/MustRegister pattern
// (iotexproject-iotex-core/node/metric.go), but registered into a
// caller-supplied Registerer rather than the global default registry, so
// that more than one SCDB instance (as in tests) can coexist without a
// duplicate-registration panic.
type Metrics struct {
	blocksProcessed   prometheus.Counter
	softRejects       prometheus.Counter
	tauResets         prometheus.Counter
	syncHits          prometheus.Counter
	syncMisses        prometheus.Counter
	syncCandidatesLast prometheus.Gauge
}

// NewMetrics constructs and registers SCDB's counters into reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		blocksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scdb_blocks_processed_total",
			Help: "Number of blocks successfully passed through the Update Driver.",
		}),
		softRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scdb_soft_rejects_total",
			Help: "Number of per-output soft rejects (h* commitments rejected by the ratchet).",
		}),
		tauResets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scdb_tau_resets_total",
			Help: "Number of per-sidechain bundle-index clears at a tau boundary.",
		}),
		syncHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scdb_mt_sync_hits_total",
			Help: "Number of MT-sync searches that found a matching candidate transition.",
		}),
		syncMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scdb_mt_sync_misses_total",
			Help: "Number of MT-sync searches that exhausted the candidate space without a match.",
		}),
		syncCandidatesLast: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scdb_mt_sync_candidates_last",
			Help: "Number of Cartesian-product candidates enumerated on the most recent MT-sync search.",
		}),
	}
	reg.MustRegister(
		m.blocksProcessed,
		m.softRejects,
		m.tauResets,
		m.syncHits,
		m.syncMisses,
		m.syncCandidatesLast,
	)
	return m
}

func (m *Metrics) observeSyncCandidates(n int) {
	m.syncCandidatesLast.Set(float64(n))
}

func (m *Metrics) observeSyncOutcome(matched bool) {
	if matched {
		m.syncHits.Inc()
	} else {
		m.syncMisses.Inc()
	}
}
