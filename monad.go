// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Combinators over Cont.
//
// Map and FlatMap stay in the caller's scope: a shift anywhere aborts the
// whole composition. The Recover/Redeem family run the program in a nested
// scope of their own, so they observe its shift and decide what happens
// next; the shift type of the result (S2) is independent of the input's.

// Map applies f to the result of c.
func Map[S, A, B any](c Cont[S, A], f func(A) B) Cont[S, B] {
	return func(e Effect[S]) B {
		return f(c(e))
	}
}

// FlatMap sequences c with the program chosen by f.
func FlatMap[S, A, B any](c Cont[S, A], f func(A) Cont[S, B]) Cont[S, B] {
	return func(e Effect[S]) B {
		return f(c(e))(e)
	}
}

// Recover replaces a shift of c with a result computed from it.
func Recover[S, S2, A any](c Cont[S, A], f func(S) A) Cont[S2, A] {
	return func(Effect[S2]) A {
		return Fold(c, f, identity[A])
	}
}

// RecoverWith replaces a shift of c with the program chosen by f, run in
// the caller's scope.
func RecoverWith[S, S2, A any](c Cont[S, A], f func(S) Cont[S2, A]) Cont[S2, A] {
	return func(e Effect[S2]) A {
		out := Reset[S, A](c)
		if s, ok := out.ShiftedValue(); ok {
			return f(s)(e)
		}
		a, _ := out.Result()
		return a
	}
}

// Redeem maps both a shift and a result of c onto B.
func Redeem[S, S2, A, B any](c Cont[S, A], recover func(S) B, transform func(A) B) Cont[S2, B] {
	return func(Effect[S2]) B {
		return Fold(c, recover, transform)
	}
}

// RedeemWith continues with a program chosen by the outcome of c.
func RedeemWith[S, S2, A, B any](c Cont[S, A], recover func(S) Cont[S2, B], transform func(A) Cont[S2, B]) Cont[S2, B] {
	return func(e Effect[S2]) B {
		return Fold(c, recover, transform)(e)
	}
}

// identity is the pass-through transform for Recover.
func identity[A any](a A) A { return a }
