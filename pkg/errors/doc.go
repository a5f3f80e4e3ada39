// Package errors provides structured error handling for the control tree.
//
// Two classes of failure exist. Contract violations (detaching an unattached
// handler, resuming layout more times than it was suspended, laying out a
// disposed node) are caller defects: they panic with a *UIError of kind
// KindContract built by Fault and are never recovered by the library.
// Everything else that should reach the host application (peer creation
// failures, recovered handler panics) goes through Report and ReportPanic to
// the global ErrorHandler, which defaults to a slog-backed LogHandler.
package errors
