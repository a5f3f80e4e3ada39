package platform

// Dispatcher marshals work onto the owner (UI) thread.
type Dispatcher interface {
	// Invoke runs callback on the owner thread and waits for it to finish.
	Invoke(callback func())

	// BeginInvoke schedules callback on the owner thread and returns.
	BeginInvoke(callback func())
}

// DispatchFunc adapts a schedule function into a Dispatcher. The function
// must eventually run the callback on the owner thread.
type DispatchFunc func(callback func())

// BeginInvoke schedules callback. Nil callbacks are ignored.
func (f DispatchFunc) BeginInvoke(callback func()) {
	if f == nil || callback == nil {
		return
	}
	f(callback)
}

// Invoke schedules callback and blocks until it has run. Calling Invoke from
// the owner thread with an asynchronous DispatchFunc deadlocks.
func (f DispatchFunc) Invoke(callback func()) {
	if f == nil || callback == nil {
		return
	}
	done := make(chan struct{})
	f(func() {
		defer close(done)
		callback()
	})
	<-done
}

// Immediate is a Dispatcher that runs callbacks synchronously on the
// calling goroutine.
var Immediate Dispatcher = DispatchFunc(func(cb func()) { cb() })
