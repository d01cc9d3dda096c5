// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// None is the absence sentinel shifted by the option adapter.
type None struct{}

// Option is an optional value: Some(a) or empty.
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// Empty creates an absent Option.
func Empty[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool { return o.ok }

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool { return !o.ok }

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) { return o.value, o.ok }

// GetOrElse returns the value, or def when absent.
func (o Option[A]) GetOrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

// Extract implements Carrier[None, A].
func (o Option[A]) Extract() (A, None, bool) { return o.value, None{}, o.ok }

// OptionEffect is the capability of an option scope.
// It fixes the shift type to None and delegates to the wrapped capability.
type OptionEffect struct {
	inner Effect[None]
}

// Shift implements Effect[None].
func (o OptionEffect) Shift(n None) { o.inner.Shift(n) }

// Ensure shifts None when cond is false.
func (o OptionEffect) Ensure(cond bool) {
	if !cond {
		o.inner.Shift(None{})
	}
}

// OptionNotNil returns p when non-nil and shifts None otherwise.
func OptionNotNil[B any](e Effect[None], p *B) *B {
	if p == nil {
		e.Shift(None{})
	}
	return p
}

// RunOption runs body in a scope whose shifts mean "absent".
//
// Example:
//
//	RunOption(func(o OptionEffect) int {
//	    x := Bind(o, Some(1))
//	    o.Ensure(x > 0)
//	    return x + Bind(o, Empty[int]()) // absent
//	})
func RunOption[A any](body func(OptionEffect) A) Option[A] {
	return ToOption(Reset(func(e Effect[None]) A {
		return body(OptionEffect{inner: e})
	}))
}

// ToOption folds Completed(a) to Some(a) and Shifted to Empty.
func ToOption[A any](o Outcome[None, A]) Option[A] {
	return MatchOutcome(o, func(None) Option[A] { return Empty[A]() }, Some[A])
}
