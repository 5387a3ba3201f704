package prom

import (
	"net/http"
	"strconv"

	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "linkbot"

// Recorder exports moderation activity as Prometheus series. Every series is
// registered on the registry passed to NewRecorder, never the global one.
type Recorder struct {
	registry *prometheus.Registry

	sessionsStarted     prometheus.Counter
	sessionActive       prometheus.Gauge
	submissions         prometheus.Counter
	identities          prometheus.Counter
	uniqueLinks         prometheus.Counter
	restrictionsApplied *prometheus.CounterVec
	releases            *prometheus.CounterVec
	platformFailures    *prometheus.CounterVec
}

var _ ports.Metrics = (*Recorder)(nil)

func NewRecorder(registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		sessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "started_total",
			Help:      "Link-drop sessions started.",
		}),
		sessionActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "1 while a link-drop session is running.",
		}),
		submissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "submissions_total",
			Help:      "Text messages recorded during sessions.",
		}),
		identities: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "identities_total",
			Help:      "Profile identities extracted from submissions, duplicates included.",
		}),
		uniqueLinks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "unique_links_total",
			Help:      "Links that were new for their submitter.",
		}),
		restrictionsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "restrictions_applied_total",
			Help:      "Mutes applied, by whether they release on their own.",
		}, []string{"timed"}),
		releases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "releases_total",
			Help:      "Scheduled release tasks that finished, by outcome.",
		}, []string{"outcome"}),
		platformFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "failures_total",
			Help:      "Chat platform calls that returned an error, by operation.",
		}, []string{"op"}),
	}
}

// RegisterRuntimeCollectors adds the Go runtime and process collectors.
func (r *Recorder) RegisterRuntimeCollectors() error {
	if err := r.registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	return r.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) SessionStarted() {
	r.sessionsStarted.Inc()
	r.sessionActive.Set(1)
}

func (r *Recorder) SessionEnded() {
	r.sessionActive.Set(0)
}

func (r *Recorder) SubmissionRecorded(identities int, newLinks int) {
	r.submissions.Inc()
	r.identities.Add(float64(identities))
	r.uniqueLinks.Add(float64(newLinks))
}

func (r *Recorder) RestrictionApplied(timed bool) {
	r.restrictionsApplied.WithLabelValues(strconv.FormatBool(timed)).Inc()
}

func (r *Recorder) RestrictionReleased(outcome string) {
	r.releases.WithLabelValues(outcome).Inc()
}

func (r *Recorder) PlatformCallFailed(op string) {
	r.platformFailures.WithLabelValues(op).Inc()
}
