// Package event implements routed events over a tree of Targets.
//
// A RoutedEvent is registered once per (name, owner) in a Registry and
// declares its routing strategy. Raising a TunnelBubble event builds a Route
// from the root down to the target, with each node's class handlers ahead of
// its instance handlers, then invokes it root to target (tunnel) and again
// target to root (bubble). Direct events reach only the target.
//
// Handlers run synchronously. A panicking handler aborts the route and the
// panic reaches the caller of Raise; RaiseGuarded is the one place that
// recovers it.
package event
