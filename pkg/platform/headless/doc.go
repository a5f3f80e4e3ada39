// Package headless implements an in-memory native backend.
//
// Peers record every call made on them, deliver callbacks only when the test
// or tool fires them, and queue asynchronous work (BeginInvoke, the
// handle-destroyed notification after Destroy) until Pump is called. This
// makes the ordering rules of the control layer observable without a real
// windowing system.
//
//	b := headless.New()
//	app := control.NewApp(b)
//	...
//	b.Pump() // deliver deferred destroyed callbacks
package headless
