package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

const namespace = "apidocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	runDuration     prom.Histogram
	pagesWritten    *prom.CounterVec
	packagesLoaded  prom.Counter
	runOutcomes     *prom.CounterVec
	lastRunUnixTime prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg,
// or on a fresh private registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a full documentation run",
			Buckets:   prom.DefBuckets,
		}),
		pagesWritten: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_written_total",
			Help:      "Pages written, by theme",
		}, []string{"theme"}),
		packagesLoaded: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "packages_loaded_total",
			Help:      "API descriptions loaded",
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Documentation runs by final status",
		}, []string{"outcome"}),
		lastRunUnixTime: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last finished run",
		}),
	}
	reg.MustRegister(pr.runDuration, pr.pagesWritten, pr.packagesLoaded, pr.runOutcomes, pr.lastRunUnixTime)
	return pr
}

// Registry returns the registry the collectors live on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPagesWritten(theme string) {
	if p == nil {
		return
	}
	p.pagesWritten.WithLabelValues(theme).Inc()
}

func (p *PrometheusRecorder) IncPackagesLoaded() {
	if p == nil {
		return
	}
	p.packagesLoaded.Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	if p == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
	p.lastRunUnixTime.SetToCurrentTime()
}

// WriteTextfile writes the registry atomically in the text exposition
// format, for the node-exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return derrors.FileSystemError("write metrics", path, err)
	}
	return nil
}
