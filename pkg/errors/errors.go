package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a caller defect such as an unbalanced counter.
	KindContract
	// KindPeer indicates a native peer creation or binding failure.
	KindPeer
	// KindConfig indicates a configuration or document loading error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindPeer:
		return "peer"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Sentinel causes carried by contract faults.
var (
	ErrNotAttached     = stderrors.New("handler is not attached")
	ErrAlreadyAttached = stderrors.New("handler is already attached")
	ErrNegativeCount   = stderrors.New("counter resumed below zero")
	ErrDisposed        = stderrors.New("node is disposed")
	ErrTreeLoop        = stderrors.New("ancestor chain exceeds maximum length")
	ErrCycle           = stderrors.New("node cannot be its own ancestor")
	ErrDuplicateEvent  = stderrors.New("routed event already registered")
	ErrNoEvent         = stderrors.New("event args carry no routed event")
)

// UIError represents a structured error raised by the control tree.
type UIError struct {
	// Op is the operation that failed (e.g., "control.Node.ResumeLayout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "event.Raise MouseDown").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Wrap returns err as a UIError of kind k for op, or nil when err is nil.
// An error that already is a UIError is returned unchanged.
func Wrap(op string, k ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	var ue *UIError
	if stderrors.As(err, &ue) {
		return err
	}
	return &UIError{Op: op, Kind: k, Err: err, Timestamp: time.Now()}
}

// Fault panics with a contract-violation UIError for op.
func Fault(op string, err error) {
	panic(&UIError{
		Op:         op,
		Kind:       KindContract,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// IsFault reports whether v, typically a recovered panic value, is a
// contract fault wrapping target. A nil target matches any contract fault.
func IsFault(v any, target error) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var ue *UIError
	if !stderrors.As(err, &ue) || ue.Kind != KindContract {
		return false
	}
	return target == nil || stderrors.Is(ue.Err, target)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the control tree.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
