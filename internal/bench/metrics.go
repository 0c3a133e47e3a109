package bench

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 실행 한 번 동안 모으는 Prometheus 지표. 전역 레지스트리는 쓰지 않는다.
type Metrics struct {
	registry   *prometheus.Registry
	duration   *prometheus.HistogramVec
	spawns     *prometheus.CounterVec
	mismatches prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "qsort",
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock time of one sort call.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
		}, []string{"mode"}),
		spawns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qsort",
			Name:      "spawn_total",
			Help:      "Fork points by how they were executed.",
		}, []string{"kind"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "qsort",
			Name:      "mismatch_total",
			Help:      "Runs whose parallel output differed from the sequential output.",
		}),
	}
	m.registry.MustRegister(m.duration, m.spawns, m.mismatches)
	return m
}

// Observe 측정값 하나 반영
func (m *Metrics) Observe(r Result) {
	m.duration.WithLabelValues(string(r.Mode)).Observe(r.Duration.Seconds())
	if r.Mode == Parallel {
		m.spawns.WithLabelValues("forked").Add(float64(r.Forked))
		m.spawns.WithLabelValues("inlined").Add(float64(r.Inlined))
	}
}

func (m *Metrics) ObserveComparison(c Comparison) {
	if !c.Equal {
		m.mismatches.Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile node_exporter textfile 형식으로 저장
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.registry), "write metrics %s", path)
}
