// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrScopeEnded is panicked by Shift when the capability outlived the
	// Reset that created it.
	ErrScopeEnded = errors.New("delim: shift on an ended scope")

	// ErrShiftEscaped is what an unrecovered shift signal reports.
	// It indicates a capability used on a goroutine not supervised by
	// Par, Race or Go.
	ErrShiftEscaped = errors.New("delim: shift escaped its scope")
)

// PanicError wraps a panic raised by a concurrent branch or an async scope,
// together with the stack of the goroutine that panicked.
// It is re-panicked on the goroutine that joins the branch; delim never
// converts it into a Shifted outcome.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns the panic value followed by the captured stack.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// newPanicError captures r with the current stack.
// An r that is already a *PanicError (a nested branch) is kept as is.
func newPanicError(r any) *PanicError {
	if pe, ok := r.(*PanicError); ok {
		return pe
	}
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: r, Stack: string(buf[:n])}
}
