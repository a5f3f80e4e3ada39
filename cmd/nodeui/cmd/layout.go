package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/go-drift/nodeui/internal/scene"
	"github.com/go-drift/nodeui/pkg/control"
	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/metrics"
	"github.com/go-drift/nodeui/pkg/platform"
	"github.com/go-drift/nodeui/pkg/platform/headless"
	"github.com/go-drift/nodeui/pkg/theme"
)

type layoutOptions struct {
	root        *rootOptions
	theme       string
	width       float64
	height      float64
	showMetrics bool
	watch       bool
}

func layoutCmd(root *rootOptions) *cobra.Command {
	opts := &layoutOptions{root: root}

	cmd := &cobra.Command{
		Use:   "layout <scene.yaml>",
		Short: "Build a scene, lay it out and print the bounds tree",
		Long: `Build the control tree described by a scene file on the headless backend,
realize its peers, run layout at the configured client size and print every
node's bounds relative to its parent.

With --watch the scene is laid out again each time the file is saved, until
interrupted.

Axes without a configured size take the scene's preferred size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme sheet (.yaml or .toml), overrides nodeui.yaml")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "client width, overrides nodeui.yaml")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "client height, overrides nodeui.yaml")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print collected metrics after layout")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "lay the scene out again whenever the file changes")

	return cmd
}

func runLayout(cmd *cobra.Command, opts *layoutOptions, path string) error {
	res, err := opts.root.resolve()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), res.LogLevel)

	backend := headless.New()
	if err := platform.CheckBackend(backend.Info(), res.BackendMinVersion); err != nil {
		return err
	}

	themePath := res.ThemePath
	if opts.theme != "" {
		themePath = opts.theme
	}
	var sheet *theme.Sheet
	if themePath != "" {
		if sheet, err = theme.LoadFile(themePath); err != nil {
			return err
		}
	}

	size := res.ClientSize
	if cmd.Flags().Changed("width") {
		size.Width = opts.width
	}
	if cmd.Flags().Changed("height") {
		size.Height = opts.height
	}

	out := cmd.OutOrStdout()
	render := func() error {
		return renderScene(out, logger, backend, sheet, path, size, opts.showMetrics)
	}
	if !opts.watch {
		return render()
	}
	return watchFile(cmd.Context(), path, watchDebounce, func() {
		defer fmt.Fprintln(out, "---")
		defer errors.Recover("cmd.layout " + path)
		if err := render(); err != nil {
			logger.Error("layout failed", "scene", path, "err", err)
		}
	})
}

// renderScene builds the scene at path, lays it out at size and prints the
// bounds tree, then disposes the tree.
func renderScene(out io.Writer, logger *slog.Logger, backend *headless.Backend, sheet *theme.Sheet, path string, size graphics.Size, showMetrics bool) error {
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	app := control.NewApp(backend,
		control.WithLogger(logger),
		control.WithObserver(metrics.New(metrics.WithRegistry(registry))),
		control.WithTheme(sheet),
	)
	root, err := scene.Build(app, doc)
	if err != nil {
		return err
	}

	root.Realize()
	scene.Arrange(root, size)
	backend.Pump()
	logger.Debug("scene arranged", "scene", path, "size", root.ClientSize(), "peers", len(backend.Live()))

	printTree(out, root)

	root.Dispose()
	backend.Pump()

	if showMetrics {
		families, err := registry.Gather()
		if err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
		fmt.Fprintln(out)
		printMetrics(out, families)
	}
	return nil
}

func printTree(w io.Writer, root *control.Node) {
	scene.Walk(root, func(n *control.Node, depth int) {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "%s [%s] %s", n, n.Class(), n.Bounds())
		if h := n.Handler(); h != nil && h.Kind() != "" {
			fmt.Fprintf(&b, " peer=%s", h.Kind())
		}
		if !n.Visible() {
			b.WriteString(" hidden")
		}
		fmt.Fprintln(w, b.String())
	})
}

func printMetrics(w io.Writer, families []*dto.MetricFamily) {
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), value)
		}
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	labels := make([]string, 0, len(pairs))
	for _, p := range pairs {
		labels = append(labels, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(labels)
	return "{" + strings.Join(labels, ",") + "}"
}
