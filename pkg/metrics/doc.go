// Package metrics exports control-tree activity as Prometheus metrics.
//
// A Collector is a control.Observer; install it with control.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	app := control.NewApp(backend, control.WithObserver(metrics.New(metrics.WithRegistry(reg))))
package metrics
