package control

import (
	"log/slog"

	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/platform"
	"github.com/go-drift/nodeui/pkg/theme"
)

// App is the per-application context shared by every node: the native
// backend, the routed-event registry, the theme and the logger.
type App struct {
	backend  platform.Backend
	logger   *slog.Logger
	observer Observer
	registry *event.Registry
	events   *Events
	sheet    *theme.Sheet
	nextID   uint64
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithObserver installs an observer notified of layout passes, peer
// lifecycle and raised events.
func WithObserver(o Observer) Option {
	return func(a *App) { a.observer = o }
}

// WithTheme sets the style sheet nodes resolve their visual states from.
func WithTheme(s *theme.Sheet) Option {
	return func(a *App) { a.sheet = s }
}

// NewApp creates an application bound to backend.
func NewApp(backend platform.Backend, opts ...Option) *App {
	a := &App{
		backend:  backend,
		logger:   slog.Default(),
		observer: NopObserver{},
		registry: event.NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.events = registerEvents(a.registry)
	return a
}

// Backend returns the native backend.
func (a *App) Backend() platform.Backend { return a.backend }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Registry returns the routed-event registry.
func (a *App) Registry() *event.Registry { return a.registry }

// Events returns the standard routed events.
func (a *App) Events() *Events { return a.events }

// Theme returns the current style sheet, which may be nil.
func (a *App) Theme() *theme.Sheet { return a.sheet }

// SetTheme replaces the style sheet. Nodes pick it up on their next visual
// state change or peer realization; call Node.RecreateHandler to force it.
func (a *App) SetTheme(s *theme.Sheet) { a.sheet = s }

// AddClassHandler registers fn for every node of class, ahead of instance
// handlers.
func (a *App) AddClassHandler(class string, ev *event.RoutedEvent, fn event.HandlerFunc, handledEventsToo bool) {
	a.registry.RegisterClassHandler(class, ev, fn, handledEventsToo)
}

// Invoke runs fn on the owner thread and waits for it.
func (a *App) Invoke(fn func()) { a.backend.Invoke(fn) }

// BeginInvoke schedules fn on the owner thread.
func (a *App) BeginInvoke(fn func()) { a.backend.BeginInvoke(fn) }

// NewNode creates a detached node of class whose handler creates peers of
// kind. An empty kind makes a lightweight node that never has a peer.
func (a *App) NewNode(class, kind string) *Node {
	n := newNode(a, class)
	NewHandler(kind, nil).Attach(n)
	return n
}
