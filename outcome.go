// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Outcome is the result of running a scope: either Completed with the
// body's result R, or Shifted with the value S passed to Shift.
type Outcome[S, R any] struct {
	shifted bool
	shift   S
	result  R
}

// Completed creates a Completed outcome.
func Completed[S, R any](r R) Outcome[S, R] {
	return Outcome[S, R]{result: r}
}

// Shifted creates a Shifted outcome.
func Shifted[S, R any](s S) Outcome[S, R] {
	return Outcome[S, R]{shifted: true, shift: s}
}

// IsCompleted returns true if the body returned normally.
func (o Outcome[S, R]) IsCompleted() bool {
	return !o.shifted
}

// IsShifted returns true if the body was aborted by Shift.
func (o Outcome[S, R]) IsShifted() bool {
	return o.shifted
}

// Result returns the body's result and true, or zero and false.
func (o Outcome[S, R]) Result() (R, bool) {
	if !o.shifted {
		return o.result, true
	}
	var zero R
	return zero, false
}

// ShiftedValue returns the shifted value and true, or zero and false.
func (o Outcome[S, R]) ShiftedValue() (S, bool) {
	if o.shifted {
		return o.shift, true
	}
	var zero S
	return zero, false
}

// Extract implements Carrier: Bind on an Outcome re-shifts a Shifted
// value into the enclosing scope and unwraps a Completed one.
func (o Outcome[S, R]) Extract() (R, S, bool) {
	return o.result, o.shift, !o.shifted
}

// MatchOutcome pattern matches on the outcome.
func MatchOutcome[S, R, T any](o Outcome[S, R], onShifted func(S) T, onCompleted func(R) T) T {
	if o.shifted {
		return onShifted(o.shift)
	}
	return onCompleted(o.result)
}

// MapOutcome applies f to a Completed result.
func MapOutcome[S, R, T any](o Outcome[S, R], f func(R) T) Outcome[S, T] {
	if o.shifted {
		return Shifted[S, T](o.shift)
	}
	return Completed[S](f(o.result))
}

// MapShifted applies f to a Shifted value.
func MapShifted[S, T, R any](o Outcome[S, R], f func(S) T) Outcome[T, R] {
	if o.shifted {
		return Shifted[T, R](f(o.shift))
	}
	return Completed[T](o.result)
}

// FlatMapOutcome sequences two outcomes.
func FlatMapOutcome[S, R, T any](o Outcome[S, R], f func(R) Outcome[S, T]) Outcome[S, T] {
	if o.shifted {
		return Shifted[S, T](o.shift)
	}
	return f(o.result)
}
