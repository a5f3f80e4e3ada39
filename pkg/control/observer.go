package control

import "github.com/go-drift/nodeui/pkg/event"

// Observer is notified of control-tree activity. Implementations must not
// mutate the tree.
type Observer interface {
	LayoutPerformed(n *Node)
	PeerRealized(n *Node)
	// PeerDisposed fires when a peer is released. deferred is true when
	// disposal waited for the platform destroyed callback.
	PeerDisposed(n *Node, deferred bool)
	EventRaised(n *Node, ev *event.RoutedEvent)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) LayoutPerformed(*Node)                 {}
func (NopObserver) PeerRealized(*Node)                    {}
func (NopObserver) PeerDisposed(*Node, bool)              {}
func (NopObserver) EventRaised(*Node, *event.RoutedEvent) {}
