// Package cmd implements the nodeui CLI commands.
//
// The root command dispatches to layout, theme and version. Settings come
// from an optional nodeui.yaml at the project root, overridden by flags.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodeui/cmd/nodeui/internal/config"
	"github.com/go-drift/nodeui/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	dir      string
	logLevel string
}

// Execute runs the CLI with os.Args. An interrupt cancels the command
// context, which ends layout --watch.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "nodeui",
		Short: "Lay out control trees headlessly",
		Long: `nodeui builds control-tree scenes described in YAML on the headless
backend, runs layout and prints the arranged bounds.

Settings are read from nodeui.yaml in the project root when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", "project directory (default: nearest directory with nodeui.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides nodeui.yaml)")

	root.AddCommand(
		layoutCmd(opts),
		themeCmd(),
		versionCmd(),
	)
	return root
}

// resolve loads the project configuration and applies flag overrides.
func (o *rootOptions) resolve() (*config.Resolved, error) {
	dir := o.dir
	if dir == "" {
		var err error
		if dir, err = config.FindProjectRoot(); err != nil {
			return nil, err
		}
	}
	res, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		if err := res.LogLevel.UnmarshalText([]byte(o.logLevel)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// newLogger returns a text logger writing to w and routes reported errors
// through it.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: level <= slog.LevelDebug})
	return logger
}
