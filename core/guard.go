package core

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// PanicError carries a recovered panic value and the stack at recovery
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Guard runs fn and converts a panic into a *PanicError
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for fire-and-forget work on the host's behalf;
// a crash is logged and dropped so the host thread is never taken down
func Go(log *zap.Logger, fn func()) {
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		err := Guard(func() error {
			fn()
			return nil
		})
		if pe, ok := err.(*PanicError); ok {
			log.Error("background task crashed",
				zap.Any("panic", pe.Value),
				zap.ByteString("stack", pe.Stack))
		}
	}()
}
