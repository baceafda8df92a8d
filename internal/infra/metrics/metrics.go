// Package metrics exposes membership workflow counters to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"

	"membership/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "membership"

// Recorder implements service.MembershipMetrics on a private registry.
type Recorder struct {
	registry           *prometheus.Registry
	ordersCredited     prometheus.Counter
	ordersSkipped      *prometheus.CounterVec
	cardUpgrades       prometheus.Counter
	defaultCardsIssued prometheus.Counter
}

var _ service.MembershipMetrics = (*Recorder)(nil)

// NewRecorder registers the membership counters together with the Go and
// process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersCredited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_credited_total",
			Help:      "Orders whose spend was credited to the loyalty ledger.",
		}),
		ordersSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_skipped_total",
			Help:      "Orders that credited nothing, by reason.",
		}, []string{"reason"}),
		cardUpgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "card_upgrades_total",
			Help:      "Membership cards issued by a tier upgrade.",
		}),
		defaultCardsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "default_cards_issued_total",
			Help:      "Membership cards issued at the lowest tier.",
		}),
	}

	r.registry.MustRegister(
		r.ordersCredited,
		r.ordersSkipped,
		r.cardUpgrades,
		r.defaultCardsIssued,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// NewMembershipMetrics adapts NewRecorder for dependency injection.
func NewMembershipMetrics(r *Recorder) service.MembershipMetrics {
	return r
}

func (r *Recorder) OrderCredited() { r.ordersCredited.Inc() }

func (r *Recorder) OrderSkipped(reason string) { r.ordersSkipped.WithLabelValues(reason).Inc() }

func (r *Recorder) CardUpgraded() { r.cardUpgrades.Inc() }

func (r *Recorder) DefaultCardIssued() { r.defaultCardsIssued.Inc() }

// RegisterDBStats exports the connection pool statistics of db.
func (r *Recorder) RegisterDBStats(db *sql.DB) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
