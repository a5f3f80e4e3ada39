// Package control binds a tree of logical nodes to native peers, lays the
// tree out and routes events through it.
//
// Three objects cooperate:
//
//   - Node is the logical element. It owns its children, its geometry and
//     its layout and update counters.
//   - Handler is owned by exactly one Node. It creates the native peer on
//     first access, registers the peer callbacks and translates them into
//     routed events.
//   - platform.Peer is the native widget. It holds a non-owning reference
//     back to its Handler (see HandlerOf).
//
// A peer that exists before its node has a parent is wired into the parent's
// peer as soon as both exist: on parent assignment when the parent is
// already realized, otherwise when either side is realized later.
//
// Everything in this package runs on the owner thread. Use App.Invoke or
// App.BeginInvoke to get there from another goroutine.
package control
