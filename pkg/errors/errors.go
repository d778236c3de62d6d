// Package errors provides structured error handling for the listmodel library.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel errors returned by model constructors and accessors.
var (
	// ErrNilItems is reported when a model is constructed over a nil sequence.
	ErrNilItems = stderrors.New("listmodel: nil backing sequence")
	// ErrNilSource is reported when a legacy adapter is constructed over a nil source.
	ErrNilSource = stderrors.New("listmodel: nil item source")
	// ErrIndexOutOfRange is reported when an item or text accessor is queried
	// outside [0, Len()).
	ErrIndexOutOfRange = stderrors.New("listmodel: index out of range")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBind indicates a failure to bind a model to its backing sequence.
	KindBind
	// KindRange indicates an out-of-range item or text query.
	KindRange
	// KindListener indicates a failure inside a notification subscriber.
	KindListener
)

func (k ErrorKind) String() string {
	switch k {
	case KindBind:
		return "bind"
	case KindRange:
		return "range"
	case KindListener:
		return "listener"
	default:
		return "unknown"
	}
}

// ModelError represents a structured error in the listmodel library.
type ModelError struct {
	// Op is the operation that failed (e.g., "listmodel.NewBound").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Index is the offending index for range errors, -1 otherwise.
	Index int
	// Len is the sequence length at the time of a range error.
	Len int
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ModelError) Error() string {
	if e.Kind == KindRange {
		return fmt.Sprintf("%s [%s] index=%d len=%d: %v", e.Op, e.Kind, e.Index, e.Len, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "listmodel.Bound.Invalidate").
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

// ErrorHandler receives errors reported by the listmodel library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ModelError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
