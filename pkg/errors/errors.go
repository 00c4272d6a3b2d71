// Package errors provides structured error handling for the bridge runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMisuse indicates a violated handle contract (use-after-destroy,
	// double-destroy, wrong-kind handle passed to a typed entry point).
	KindMisuse
	// KindConvert indicates a value failed to lower or lift across the boundary.
	KindConvert
	// KindCallback indicates a failure while invoking a foreign callback.
	KindCallback
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMisuse:
		return "misuse"
	case KindConvert:
		return "convert"
	case KindCallback:
		return "callback"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BridgeError represents a structured error in the bridge runtime.
type BridgeError struct {
	// Op is the operation that failed (e.g., "bridge.CallAction").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle is the offending handle value, if applicable (0 otherwise).
	Handle uintptr
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BridgeError) Error() string {
	if e.Handle != 0 {
		return fmt.Sprintf("%s [%s] handle=0x%x: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "bridge.dispatchWatcher").
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

// MisuseError describes a handle contract violation in detail.
type MisuseError struct {
	// Handle is the offending handle value.
	Handle uintptr
	// Want is the expected handle kind name.
	Want string
	// Got is the actual kind name, or "destroyed" if the handle is gone.
	Got string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("handle 0x%x: want %s, got %s", e.Handle, e.Want, e.Got)
}

// ConvertError represents a failed lowering or lifting of a value.
type ConvertError struct {
	// Type is the native type name being converted.
	Type string
	// Direction is "lower" or "lift".
	Direction string
	// Err is the underlying cause.
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Direction, e.Type, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the bridge runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BridgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
