// Package platform defines the contract between the control tree and native
// widget peers.
//
// A Peer is an opaque handle to a platform widget. The control layer consumes
// it through this package only: creation goes through a Factory (usually a
// Registry of per-kind factories), native notifications arrive through
// callbacks registered on named Slots, and cross-thread work is marshalled
// onto the owner thread by a Dispatcher.
//
// Peers are not safe for concurrent use. Every call, including callback
// delivery, happens on the owner thread.
package platform
