package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/nodeui/pkg/control"
	"github.com/go-drift/nodeui/pkg/event"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "nodeui").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "nodeui",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records layout passes, peer lifecycle and raised events.
type Collector struct {
	layoutPasses  *prometheus.CounterVec
	peersRealized *prometheus.CounterVec
	peersDisposed *prometheus.CounterVec
	eventsRaised  *prometheus.CounterVec
	livePeers     prometheus.Gauge
}

var _ control.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics. Registering two
// collectors with the same namespace on one registry panics.
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		layoutPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "layout_passes_total",
			Help:        "Arrange passes run, by node class.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"class"}),
		peersRealized: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "peers_realized_total",
			Help:        "Native peers created, by peer kind.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),
		peersDisposed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "peer_disposals_total",
			Help:        "Native peers released, by whether disposal waited for the destroyed callback.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"deferred"}),
		eventsRaised: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "routed_events_total",
			Help:        "Routed events raised, by event.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),
		livePeers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "live_peers",
			Help:        "Native peers realized and not yet released.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

func (c *Collector) LayoutPerformed(n *control.Node) {
	c.layoutPasses.WithLabelValues(n.Class()).Inc()
}

func (c *Collector) PeerRealized(n *control.Node) {
	kind := ""
	if h := n.Handler(); h != nil {
		kind = h.Kind()
	}
	c.peersRealized.WithLabelValues(kind).Inc()
	c.livePeers.Inc()
}

func (c *Collector) PeerDisposed(_ *control.Node, deferred bool) {
	c.peersDisposed.WithLabelValues(strconv.FormatBool(deferred)).Inc()
	c.livePeers.Dec()
}

func (c *Collector) EventRaised(_ *control.Node, ev *event.RoutedEvent) {
	c.eventsRaised.WithLabelValues(ev.String()).Inc()
}
