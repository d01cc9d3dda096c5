// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Effect is the capability handed to a Reset body.
// It is valid only while that body runs, and may be passed (never copied
// into independent state) to helpers and to branches started by Par/Race.
//
// Shift aborts the rest of the scope with s. It never returns; code after
// a Shift call is unreachable. Derived capabilities such as OptionEffect
// implement Effect by delegating to the capability they wrap.
type Effect[S any] interface {
	Shift(s S)
}

// Carrier is a value of type T, or an absence or failure carried as S.
// Extract returns (t, zero, true) when a T is present and
// (zero, s, false) otherwise.
//
// Outcome, Option and EitherOf implement Carrier.
type Carrier[S, T any] interface {
	Extract() (T, S, bool)
}

// Bind extracts the value held by c, or shifts with c's carried S.
//
// Example:
//
//	Reset(func(e Effect[string]) int {
//	    x := Bind(e, Completed[string](20))
//	    y := Bind(e, Shifted[string, int]("missing")) // shifts
//	    return x + y
//	})
func Bind[S, T any](e Effect[S], c Carrier[S, T]) T {
	t, s, ok := c.Extract()
	if !ok {
		e.Shift(s)
	}
	return t
}

// Ensure shifts with orElse() when cond is false, and is a no-op otherwise.
// orElse is not called when cond holds.
func Ensure[S any](e Effect[S], cond bool, orElse func() S) {
	if !cond {
		e.Shift(orElse())
	}
}

// EnsureNotNil returns p when it is non-nil, and shifts with orElse() otherwise.
//
// Go has no flow-sensitive nullability, so only the runtime half of the
// guarantee holds: callers still see a *B after the call.
func EnsureNotNil[S, B any](e Effect[S], p *B, orElse func() S) *B {
	if p == nil {
		e.Shift(orElse())
	}
	return p
}

// EnsureOK is the comma-ok form of EnsureNotNil: it returns v when ok is
// true, and shifts with orElse() otherwise.
//
//	p, ok := ports[name]
//	port := EnsureOK(e, p, ok, func() string { return "no port for " + name })
func EnsureOK[S, B any](e Effect[S], v B, ok bool, orElse func() S) B {
	if !ok {
		e.Shift(orElse())
	}
	return v
}
