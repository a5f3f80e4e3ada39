package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/go-drift/nodeui/pkg/control"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform/headless"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func newFixture(t *testing.T) (*Collector, *control.App, *headless.Backend) {
	t.Helper()
	c := New(WithRegistry(prometheus.NewRegistry()))
	b := headless.New()
	return c, control.NewApp(b, control.WithObserver(c)), b
}

func TestCollectorCountsLayoutPasses(t *testing.T) {
	c, app, _ := newFixture(t)
	n := app.NewNode("Panel", "")

	n.SuspendLayout()
	n.SetClientSize(graphics.Size{Width: 10, Height: 10})
	n.AddChild(app.NewNode("Label", ""))
	n.ResumeLayout(true)

	if got := metricCounterValue(t, c.layoutPasses.WithLabelValues("Panel")); got != 1 {
		t.Errorf("layout passes = %v, want 1", got)
	}
}

func TestCollectorTracksPeerLifecycle(t *testing.T) {
	c, app, b := newFixture(t)
	root := app.NewNode("Window", headless.KindPanel)
	root.AddChild(app.NewNode("Button", headless.KindButton))
	root.AddChild(app.NewNode("Button", headless.KindButton))
	root.Realize()

	if got := metricCounterValue(t, c.peersRealized.WithLabelValues(headless.KindButton)); got != 2 {
		t.Errorf("button peers realized = %v, want 2", got)
	}
	if got := metricGaugeValue(t, c.livePeers); got != 3 {
		t.Errorf("live peers = %v, want 3", got)
	}

	root.Dispose()
	if got := metricGaugeValue(t, c.livePeers); got != 3 {
		t.Errorf("live peers before pump = %v, want 3", got)
	}
	b.Pump()
	if got := metricGaugeValue(t, c.livePeers); got != 0 {
		t.Errorf("live peers after pump = %v, want 0", got)
	}
	if got := metricCounterValue(t, c.peersDisposed.WithLabelValues("true")); got != 3 {
		t.Errorf("deferred disposals = %v, want 3", got)
	}
}

func TestCollectorCountsEvents(t *testing.T) {
	c, app, _ := newFixture(t)
	n := app.NewNode("Button", "")
	n.RaiseMouseDown(&control.MouseButtonArgs{Button: control.ButtonRight})

	ev := app.Events()
	if got := metricCounterValue(t, c.eventsRaised.WithLabelValues(ev.MouseDown.String())); got != 1 {
		t.Errorf("MouseDown raised = %v, want 1", got)
	}
	if got := metricCounterValue(t, c.eventsRaised.WithLabelValues(ev.MouseRightButtonDown.String())); got != 1 {
		t.Errorf("MouseRightButtonDown raised = %v, want 1", got)
	}
}

func TestCollectorRegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg), WithNamespace("test"), WithConstLabels(prometheus.Labels{"app": "demo"}))
	c.livePeers.Set(2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_live_peers" {
			found = true
			if got := f.GetMetric()[0].GetGauge().GetValue(); got != 2 {
				t.Errorf("test_live_peers = %v, want 2", got)
			}
		}
	}
	if !found {
		t.Error("test_live_peers not registered")
	}
}
