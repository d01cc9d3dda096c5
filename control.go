// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import "code.hybscloud.com/atomix"

// Delimited control with one-shot, non-resumable Shift.
// Reset establishes the delimiter; Shift aborts up to the Reset that
// created the capability it was invoked through.

// scope is the delimiter established by one Reset call.
// Its address is the identity tag carried by every signal it raises,
// so two scopes with the same shift type never catch each other.
type scope[S any] struct {
	ended atomix.Uint32
}

// Shift implements Effect by unwinding to the owning Reset.
// Panics with ErrScopeEnded if the owning Reset has already returned.
func (sc *scope[S]) Shift(s S) {
	if sc.ended.Load() != 0 {
		panic(ErrScopeEnded)
	}
	panic(&shiftSignal[S]{scope: sc, value: s})
}

// end marks the scope as finished. Capabilities leaked past this point
// can no longer shift.
func (sc *scope[S]) end() { sc.ended.Add(1) }

// signal is the marker interface for shift signals of any shift type.
// Branch supervisors use it to route signals across goroutines without
// knowing the signal's type parameter.
type signal interface {
	error
	signal()
}

// shiftSignal is the control token raised by Shift.
// It is recovered by exactly the scope it is tagged with.
type shiftSignal[S any] struct {
	scope *scope[S]
	value S
}

func (*shiftSignal[S]) signal() {}

// Error reports a signal that unwound past every Reset, which only happens
// when a capability is used on a goroutine its scope does not supervise.
func (*shiftSignal[S]) Error() string { return ErrShiftEscaped.Error() }

// Unwrap returns ErrShiftEscaped.
func (*shiftSignal[S]) Unwrap() error { return ErrShiftEscaped }

// Reset runs body inside a new delimited scope.
//
// If body returns without shifting, Reset returns Completed with the body's
// result. If body, or anything it calls with the capability, invokes Shift,
// the rest of body is abandoned and Reset returns Shifted with the value.
// Only the first Shift is observed: it never returns to its caller.
//
// Signals raised through other scopes' capabilities, and panics unrelated
// to shifting, pass through Reset untouched.
//
// Example:
//
//	out := Reset(func(e Effect[string]) int {
//	    e.Shift("stop")
//	    return 1 // not reached
//	})
//	// out.IsShifted() == true, out.ShiftedValue() == "stop"
func Reset[S, R any](body func(Effect[S]) R) (out Outcome[S, R]) {
	sc := &scope[S]{}
	defer func() {
		sc.end()
		r := recover()
		if r == nil {
			return
		}
		if sig, ok := r.(*shiftSignal[S]); ok && sig.scope == sc {
			out = Shifted[S, R](sig.value)
			return
		}
		panic(r)
	}()
	return Completed[S](body(sc))
}

// ResetOutcome is Reset for a body that already produces an Outcome:
// a Completed body result is flattened, and either kind of shift yields Shifted.
func ResetOutcome[S, R any](body func(Effect[S]) Outcome[S, R]) Outcome[S, R] {
	return Reset(func(e Effect[S]) R {
		return Bind[S, R](e, body(e))
	})
}
