package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a BridgeError to stderr.
func (h *LogHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[bridge error] %s [%s]", err.Op, err.Kind)
		if err.Handle != 0 {
			fmt.Fprintf(os.Stderr, " handle=0x%x", err.Handle)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[bridge error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[bridge panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[bridge panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
