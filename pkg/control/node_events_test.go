package control

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform"
	"github.com/go-drift/nodeui/pkg/platform/headless"
	"github.com/go-drift/nodeui/pkg/theme"
)

type trace struct {
	calls []string
}

func (tr *trace) handler(label string) event.HandlerFunc {
	return func(sender event.Target, args event.Args) {
		tr.calls = append(tr.calls, fmt.Sprintf("%s:%s@%s", label, args.Base().Phase(), sender.(*Node).Name()))
	}
}

func twoLevels(t *testing.T) (*App, *Node, *Node) {
	t.Helper()
	app, _ := newApp(t)
	parent := app.NewNode("Panel", "")
	parent.SetName("parent")
	child := app.NewNode("Button", "")
	child.SetName("child")
	parent.AddChild(child)
	return app, parent, child
}

func TestRouteRunsClassHandlersFirst(t *testing.T) {
	app, parent, child := twoLevels(t)
	ev := app.Events().KeyDown
	tr := &trace{}
	app.AddClassHandler("Button", ev, tr.handler("class"), false)
	child.AddHandler(ev, tr.handler("instance"), false)
	parent.AddHandler(ev, tr.handler("parent"), false)

	child.RaiseKeyDown(&KeyArgs{Key: "a"})

	assert.Equal(t, []string{
		"parent:tunnel@parent",
		"class:tunnel@child",
		"instance:tunnel@child",
		"class:bubble@child",
		"instance:bubble@child",
		"parent:bubble@parent",
	}, tr.calls)
}

func TestDirectEventStaysOnTarget(t *testing.T) {
	app, parent, child := twoLevels(t)
	tr := &trace{}
	parent.AddHandler(app.Events().Idle, tr.handler("parent"), false)
	child.AddHandler(app.Events().Idle, tr.handler("child"), false)

	child.Raise(event.NewArgs(app.Events().Idle))
	assert.Equal(t, []string{"child:direct@child"}, tr.calls)
}

func TestHandledEventsToo(t *testing.T) {
	app, _, child := twoLevels(t)
	ev := app.Events().KeyDown
	var marker, normal, always int
	child.AddHandler(ev, func(_ event.Target, args event.Args) {
		marker++
		args.Base().Handled = true
	}, false)
	child.AddHandler(ev, func(event.Target, event.Args) { normal++ }, false)
	child.AddHandler(ev, func(event.Target, event.Args) { always++ }, true)

	handled := child.RaiseKeyDown(&KeyArgs{Key: "x"})

	assert.True(t, handled)
	assert.Equal(t, 1, marker, "marker only runs before Handled is set")
	assert.Equal(t, 0, normal)
	assert.Equal(t, 2, always, "tunnel and bubble")
}

func TestRemoveHandler(t *testing.T) {
	app, _, child := twoLevels(t)
	ev := app.Events().TextInput
	calls := 0
	sub := child.AddHandler(ev, func(event.Target, event.Args) { calls++ }, false)

	assert.True(t, child.RemoveHandler(sub))
	assert.False(t, child.RemoveHandler(sub))
	child.RaiseTextInput(&TextInputArgs{Text: "q"})
	assert.Zero(t, calls)
}

func TestLeftButtonCrackingKeepsHandledIndependent(t *testing.T) {
	app, parent, child := twoLevels(t)
	ev := app.Events()
	var sawHandled []bool
	parent.AddHandler(ev.MouseDown, func(_ event.Target, args event.Args) {
		args.Base().Handled = true
	}, false)
	child.AddHandler(ev.MouseLeftButtonDown, func(_ event.Target, args event.Args) {
		sawHandled = append(sawHandled, args.Base().Handled)
		assert.Same(t, ev.MouseLeftButtonDown, args.Base().Event)
	}, false)

	args := &MouseButtonArgs{Button: ButtonLeft, ClickCount: 1}
	handled := child.RaiseMouseDown(args)

	assert.True(t, handled)
	assert.Equal(t, []bool{false, false}, sawHandled, "the specific event starts unhandled")
	assert.False(t, args.ButtonHandled)
	assert.True(t, args.Handled)
	assert.Same(t, ev.MouseDown, args.Event)
}

func TestCrackedEventHandledDoesNotLeakToGeneric(t *testing.T) {
	app, _, child := twoLevels(t)
	ev := app.Events()
	genericCalls := 0
	child.AddHandler(ev.MouseDown, func(event.Target, event.Args) { genericCalls++ }, false)
	child.AddHandler(ev.MouseLeftButtonDown, func(_ event.Target, args event.Args) {
		args.Base().Handled = true
	}, false)

	args := &MouseButtonArgs{Button: ButtonLeft}
	handled := child.RaiseMouseDown(args)

	assert.False(t, handled)
	assert.True(t, args.ButtonHandled)
	assert.Equal(t, 2, genericCalls)
}

func TestButtonCrackingTable(t *testing.T) {
	tests := []struct {
		name     string
		button   MouseButton
		down     bool
		specific func(*Events) *event.RoutedEvent
	}{
		{"left down", ButtonLeft, true, func(e *Events) *event.RoutedEvent { return e.MouseLeftButtonDown }},
		{"left up", ButtonLeft, false, func(e *Events) *event.RoutedEvent { return e.MouseLeftButtonUp }},
		{"right down", ButtonRight, true, func(e *Events) *event.RoutedEvent { return e.MouseRightButtonDown }},
		{"right up", ButtonRight, false, func(e *Events) *event.RoutedEvent { return e.MouseRightButtonUp }},
		{"middle down", ButtonMiddle, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, child := twoLevels(t)
			var seen []string
			for _, ev := range app.Registry().Events() {
				ev := ev
				child.AddHandler(ev, func(event.Target, event.Args) {
					if len(seen) == 0 || seen[len(seen)-1] != ev.Name() {
						seen = append(seen, ev.Name())
					}
				}, true)
			}
			args := &MouseButtonArgs{Button: tt.button}
			if tt.down {
				child.RaiseMouseDown(args)
			} else {
				child.RaiseMouseUp(args)
			}

			generic := "MouseUp"
			if tt.down {
				generic = "MouseDown"
			}
			want := []string{generic}
			if tt.specific != nil {
				want = append(want, tt.specific(app.Events()).Name())
			}
			var routed []string
			for _, s := range seen {
				if s != "VisualStateChanged" {
					routed = append(routed, s)
				}
			}
			assert.Equal(t, want, routed)
		})
	}
}

func TestRaiseWithoutEventFaults(t *testing.T) {
	app, _ := newApp(t)
	n := app.NewNode("Panel", "")
	mustFault(t, errors.ErrNoEvent, func() { n.Raise(&KeyArgs{}) })
}

func TestHandlerPanicsPropagateFromRaise(t *testing.T) {
	app, _, child := twoLevels(t)
	child.AddHandler(app.Events().KeyUp, func(event.Target, event.Args) { panic("boom") }, false)
	assert.PanicsWithValue(t, "boom", func() { child.RaiseKeyUp(&KeyArgs{}) })
}

type panicRecorder struct {
	panics []*errors.PanicError
}

func (r *panicRecorder) HandleError(*errors.UIError)        {}
func (r *panicRecorder) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }

func TestRaiseGuardedRethrowsByDefault(t *testing.T) {
	rec := &panicRecorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	app, parent, child := twoLevels(t)
	ev := app.Events()
	child.AddHandler(ev.KeyDown, func(event.Target, event.Args) { panic("boom") }, false)
	var got *event.ErrorArgs
	child.AddHandler(ev.UnhandledError, func(_ event.Target, args event.Args) {
		got = args.(*event.ErrorArgs)
	}, false)
	parentSaw := false
	parent.AddHandler(ev.UnhandledError, func(event.Target, event.Args) { parentSaw = true }, false)

	args := &KeyArgs{BaseArgs: event.BaseArgs{Event: ev.KeyDown}}
	r := func() (r any) {
		defer func() { r = recover() }()
		child.RaiseGuarded(args)
		return nil
	}()

	pe, ok := r.(*errors.PanicError)
	require.True(t, ok, "recovered %v", r)
	assert.Equal(t, "boom", pe.Value)
	require.NotNil(t, got)
	assert.Same(t, pe, got.Err)
	assert.Same(t, args, got.Failed)
	assert.False(t, parentSaw, "UnhandledError is direct")
	require.Len(t, rec.panics, 1)
	assert.Same(t, pe, rec.panics[0])
}

func TestRaiseGuardedSwallowsWhenRethrowCleared(t *testing.T) {
	errors.SetHandler(&panicRecorder{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	app, _, child := twoLevels(t)
	ev := app.Events()
	child.AddHandler(ev.KeyDown, func(event.Target, event.Args) { panic("boom") }, false)
	child.AddHandler(ev.UnhandledError, func(_ event.Target, args event.Args) {
		args.(*event.ErrorArgs).Rethrow = false
	}, false)

	assert.NotPanics(t, func() {
		handled := child.RaiseGuarded(&KeyArgs{BaseArgs: event.BaseArgs{Event: ev.KeyDown}})
		assert.False(t, handled)
	})
}

func TestRaiseGuardedDoesNotRecoverFaults(t *testing.T) {
	app, _, child := twoLevels(t)
	child.AddHandler(app.Events().KeyDown, func(event.Target, event.Args) {
		child.ResumeLayout(true)
	}, false)
	mustFault(t, errors.ErrNegativeCount, func() {
		child.RaiseGuarded(&KeyArgs{BaseArgs: event.BaseArgs{Event: app.Events().KeyDown}})
	})
}

func sheet() *theme.Sheet {
	normal := graphics.RGB(0x33, 0x66, 0x99)
	hovered := graphics.RGB(0x44, 0x77, 0xaa)
	disabled := graphics.RGB(0x80, 0x80, 0x80)
	fg := graphics.RGB(0xff, 0xff, 0xff)
	return &theme.Sheet{Classes: map[string]theme.StateStyles{
		"Button": {
			theme.StateNormal:   {Background: &normal, Foreground: &fg, Border: &theme.BorderSettings{Width: 1, Color: fg}},
			theme.StateHovered:  {Background: &hovered},
			theme.StateDisabled: {Background: &disabled},
		},
	}}
}

func TestVisualStateDrivesPeerStyle(t *testing.T) {
	b := headless.New()
	app := NewApp(b, WithTheme(sheet()))
	n := app.NewNode("Button", headless.KindButton)
	var transitions []string
	n.AddHandler(app.Events().VisualStateChanged, func(_ event.Target, args event.Args) {
		a := args.(*VisualStateArgs)
		transitions = append(transitions, a.Old.String()+">"+a.New.String())
	}, false)
	p := peerOf(t, n)

	assert.Equal(t, graphics.RGB(0x33, 0x66, 0x99), p.Background())
	assert.Equal(t, graphics.RGB(0xff, 0xff, 0xff), p.Foreground())
	width, _ := p.Border()
	assert.Equal(t, 1.0, width)

	p.Fire(platform.SlotMouseEnter, nil)
	assert.Equal(t, theme.StateHovered, n.VisualState())
	assert.Equal(t, graphics.RGB(0x44, 0x77, 0xaa), p.Background())

	n.SetEnabled(false)
	assert.Equal(t, graphics.RGB(0x80, 0x80, 0x80), p.Background())

	n.SetEnabled(true)
	p.Fire(platform.SlotMouseLeave, nil)
	assert.Equal(t, graphics.RGB(0x33, 0x66, 0x99), p.Background())

	assert.Equal(t, []string{
		"normal>hovered",
		"hovered>disabled",
		"disabled>hovered",
		"hovered>normal",
	}, transitions)
}

func TestVisualStatePrecedence(t *testing.T) {
	app, _ := newApp(t)
	n := app.NewNode("Button", "")
	n.hovered = true
	assert.Equal(t, theme.StateHovered, n.VisualState())
	n.focused = true
	assert.Equal(t, theme.StateFocused, n.VisualState())
	n.RaiseMouseDown(&MouseButtonArgs{Button: ButtonLeft})
	assert.Equal(t, theme.StatePressed, n.VisualState())
	n.SetEnabled(false)
	assert.Equal(t, theme.StateDisabled, n.VisualState())
	n.SetEnabled(true)
	n.RaiseMouseUp(&MouseButtonArgs{Button: ButtonLeft})
	assert.Equal(t, theme.StateFocused, n.VisualState())
}

func TestSetResolverOverridesTheme(t *testing.T) {
	app := NewApp(headless.New(), WithTheme(sheet()))
	n := app.NewNode("Button", headless.KindButton)
	p := peerOf(t, n)

	red := graphics.RGB(0xff, 0, 0)
	n.SetResolver(theme.StateStyles{theme.StateNormal: {Background: &red}})
	assert.Equal(t, red, p.Background())
}

type widget struct {
	painted  []graphics.Rect
	focus    []bool
	drags    []string
	scrolled []*ScrollArgs
}

func (w *widget) Paint(_ *Node, clip graphics.Rect)  { w.painted = append(w.painted, clip) }
func (w *widget) FocusChanged(_ *Node, focused bool) { w.focus = append(w.focus, focused) }
func (w *widget) DragEnter(_ *Node, args *DragArgs) {
	w.drags = append(w.drags, "enter")
	args.Effect = platform.DragCopy
}
func (w *widget) DragOver(_ *Node, args *DragArgs) {
	w.drags = append(w.drags, "over")
	args.Effect = platform.DragLink
}
func (w *widget) DragLeave(*Node)                    { w.drags = append(w.drags, "leave") }
func (w *widget) Drop(_ *Node, args *DragArgs)       { w.drags = append(w.drags, "drop") }
func (w *widget) Scrolled(_ *Node, args *ScrollArgs) { w.scrolled = append(w.scrolled, args) }

func TestCapabilitiesRunWhenEventUnhandled(t *testing.T) {
	app, _ := newApp(t)
	n := app.NewNode("Canvas", headless.KindPanel)
	w := &widget{}
	n.SetBehavior(w)
	p := peerOf(t, n)

	clip := graphics.Rect{X: 1, Y: 1, Width: 5, Height: 5}
	p.Fire(platform.SlotPaint, &platform.PaintData{Clip: clip})
	sub := n.AddHandler(app.Events().Paint, func(_ event.Target, args event.Args) {
		args.Base().Handled = true
	}, false)
	p.Fire(platform.SlotPaint, &platform.PaintData{Clip: clip})
	n.RemoveHandler(sub)
	assert.Equal(t, []graphics.Rect{clip}, w.painted)

	p.Fire(platform.SlotGotFocus, nil)
	assert.Equal(t, theme.StateFocused, n.VisualState())
	p.Fire(platform.SlotLostFocus, nil)
	assert.Equal(t, []bool{true, false}, w.focus)

	enter := &platform.DragData{Allowed: platform.DragCopy | platform.DragMove}
	p.Fire(platform.SlotDragEnter, enter)
	assert.Equal(t, platform.DragCopy, enter.Effect)
	over := &platform.DragData{Allowed: platform.DragCopy}
	p.Fire(platform.SlotDragOver, over)
	assert.Equal(t, platform.DragNone, over.Effect, "effects outside Allowed are dropped")
	p.Fire(platform.SlotDragLeave, nil)
	p.Fire(platform.SlotDragDrop, &platform.DragData{})
	assert.Equal(t, []string{"enter", "over", "leave", "drop"}, w.drags)

	p.Fire(platform.SlotScrollbarValueChanged, &platform.ScrollData{Orientation: platform.Vertical, OldValue: 1, NewValue: 4})
	require.Len(t, w.scrolled, 1)
	assert.Equal(t, 4, w.scrolled[0].NewValue)
	assert.Equal(t, platform.Vertical, w.scrolled[0].Orientation)
}

func TestNativeCallbacksRaiseRoutedEvents(t *testing.T) {
	app, b := newApp(t)
	n := app.NewNode("Panel", headless.KindPanel)
	ev := app.Events()
	var got []string
	for _, e := range []*event.RoutedEvent{ev.HandleCreated, ev.Idle, ev.MouseCaptureLost, ev.MouseEnter} {
		n.AddHandler(e, func(_ event.Target, args event.Args) {
			got = append(got, args.Base().Event.Name())
		}, false)
	}
	p := peerOf(t, n)

	b.Pump()
	p.Fire(platform.SlotIdle, nil)
	p.Fire(platform.SlotMouseCaptureLost, nil)
	p.Fire(platform.SlotMouseEnter, nil)

	assert.Equal(t, []string{"HandleCreated", "Idle", "MouseCaptureLost", "MouseEnter"}, got)
}

func TestEventsAreRegisteredOnce(t *testing.T) {
	app, _ := newApp(t)
	ev, ok := app.Registry().Lookup("MouseDown", "Node")
	require.True(t, ok)
	assert.Same(t, app.Events().MouseDown, ev)
	assert.Equal(t, event.TunnelBubble, ev.Strategy())
	assert.Equal(t, event.Direct, app.Events().Paint.Strategy())

	other, _ := newApp(t)
	assert.NotSame(t, app.Events().MouseDown, other.Events().MouseDown)
}
