// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import "code.hybscloud.com/kont"

// Bridge to kont.
// kont.Either is the sum type of kont's Error effect; here a Left is a
// shifted value and a Right a completed one.

// EitherOf adapts a kont.Either to Carrier, so Bind unwraps Right
// and shifts Left.
type EitherOf[E, A any] kont.Either[E, A]

// Extract implements Carrier[E, A].
func (x EitherOf[E, A]) Extract() (A, E, bool) {
	e := kont.Either[E, A](x)
	if a, ok := e.GetRight(); ok {
		var zero E
		return a, zero, true
	}
	l, _ := e.GetLeft()
	var zero A
	return zero, l, false
}

// BindEither unwraps a Right, or shifts the Left into e's scope.
func BindEither[E, A any](e Effect[E], x kont.Either[E, A]) A {
	return Bind[E, A](e, EitherOf[E, A](x))
}

// ToEither folds Shifted(s) to Left(s) and Completed(a) to Right(a).
func ToEither[E, A any](o Outcome[E, A]) kont.Either[E, A] {
	return MatchOutcome(o, kont.Left[E, A], kont.Right[E, A])
}

// FromEither converts Left(e) to Shifted(e) and Right(a) to Completed(a).
func FromEither[E, A any](x kont.Either[E, A]) Outcome[E, A] {
	return kont.MatchEither(x, Shifted[E, A], Completed[E, A])
}

// RunEither runs body in a scope and reports a shift as Left.
//
// Example:
//
//	RunEither(func(e Effect[string]) int {
//	    n := BindEither(e, kont.Right[string](21))
//	    Ensure(e, n > 0, func() string { return "negative" })
//	    return n * 2
//	})
//	// Right(42)
func RunEither[E, A any](body func(Effect[E]) A) kont.Either[E, A] {
	return ToEither(Reset(body))
}

// BindError runs a kont computation under kont's Error effect and either
// returns its result or shifts its thrown error into e's scope.
func BindError[E, A any](e Effect[E], m kont.Eff[A]) A {
	return BindEither(e, kont.RunError[E, A](m))
}
