package headless

import (
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform"
)

// Version is the headless backend version reported by Info.
const Version = "v1.2.0"

// Built-in peer kinds. Any other kind creates a plain peer.
const (
	KindPanel  = "panel"
	KindLabel  = "label"
	KindButton = "button"
	KindScroll = "scroll"
)

// Backend is an in-memory platform.Backend.
type Backend struct {
	*platform.Registry

	info     platform.BackendInfo
	face     font.Face
	dpi      graphics.Size
	windowed bool

	queue []func()
	live  map[int64]*Peer
	all   []*Peer
}

// Option configures a Backend.
type Option func(*Backend)

// WithVersion overrides the reported backend version.
func WithVersion(v string) Option {
	return func(b *Backend) { b.info.Version = v }
}

// WithoutWindows creates peers that never own a native window, so disposal
// happens immediately instead of waiting for the destroyed callback.
func WithoutWindows() Option {
	return func(b *Backend) { b.windowed = false }
}

// WithFace sets the font used to measure text peers.
func WithFace(face font.Face) Option {
	return func(b *Backend) { b.face = face }
}

// WithDPI sets the resolution reported by peers.
func WithDPI(dpi graphics.Size) Option {
	return func(b *Backend) { b.dpi = dpi }
}

// New creates a headless backend with the built-in peer kinds registered.
func New(opts ...Option) *Backend {
	b := &Backend{
		Registry: platform.NewRegistry(),
		info:     platform.BackendInfo{Name: "headless", Version: Version},
		face:     basicfont.Face7x13,
		dpi:      platform.DefaultDPI,
		windowed: true,
		live:     make(map[int64]*Peer),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, kind := range []string{KindPanel, KindLabel, KindButton, KindScroll} {
		b.RegisterFactory(b.kindFactory(kind))
	}
	b.SetFallback(b.kindFactory(""))
	return b
}

func (b *Backend) kindFactory(kind string) platform.KindFactory {
	return platform.KindFactoryFunc{
		Name: kind,
		Func: func(id int64) (platform.Peer, error) {
			return b.newPeer(id, kind), nil
		},
	}
}

// CreatePeer creates a peer of kind. Unknown kinds get a plain peer whose
// Kind reports the requested name.
func (b *Backend) CreatePeer(kind string) (platform.Peer, error) {
	p, err := b.Registry.CreatePeer(kind)
	if err != nil {
		return nil, err
	}
	hp := p.(*Peer)
	hp.kind = kind
	return hp, nil
}

// Info returns the backend name and version.
func (b *Backend) Info() platform.BackendInfo {
	return b.info
}

// Invoke runs callback immediately. Headless work always happens on the
// calling goroutine.
func (b *Backend) Invoke(callback func()) {
	if callback != nil {
		callback()
	}
}

// BeginInvoke queues callback until the next Pump.
func (b *Backend) BeginInvoke(callback func()) {
	if callback != nil {
		b.queue = append(b.queue, callback)
	}
}

// Pending returns the number of queued callbacks.
func (b *Backend) Pending() int {
	return len(b.queue)
}

// Pump runs queued callbacks, including ones queued while pumping, until
// the queue is empty. It returns the number of callbacks run.
func (b *Backend) Pump() int {
	n := 0
	for len(b.queue) > 0 {
		cb := b.queue[0]
		b.queue = b.queue[1:]
		cb()
		n++
	}
	return n
}

// Live returns peers that have not been disposed, ordered by id.
func (b *Backend) Live() []*Peer {
	out := make([]*Peer, 0, len(b.live))
	for _, p := range b.live {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Created returns every peer ever created, in creation order.
func (b *Backend) Created() []*Peer {
	return b.all
}

// LastPeer returns the most recently created peer, or nil.
func (b *Backend) LastPeer() *Peer {
	if len(b.all) == 0 {
		return nil
	}
	return b.all[len(b.all)-1]
}

func (b *Backend) newPeer(id int64, kind string) *Peer {
	p := &Peer{
		backend:   b,
		id:        id,
		kind:      kind,
		window:    b.windowed,
		visible:   true,
		enabled:   true,
		callbacks: make(map[platform.Slot]platform.Callback),
	}
	b.live[id] = p
	b.all = append(b.all, p)
	if p.window {
		b.BeginInvoke(func() { p.deliver(platform.SlotHandleCreated, nil) })
	}
	return p
}
