// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Cont is a scoped program that has not been run yet.
// Cont[S, A] computes a value of type A, or shifts a value of type S.
//
// A Cont is a description: nothing happens until Run or Fold opens a scope
// for it, and it may be run any number of times, each in a fresh scope.
type Cont[S, A any] func(e Effect[S]) A

// Pure lifts a value into a Cont that never shifts.
func Pure[S, A any](a A) Cont[S, A] {
	return func(Effect[S]) A { return a }
}

// Raise creates a Cont that always shifts s.
func Raise[S, A any](s S) Cont[S, A] {
	return func(e Effect[S]) A {
		e.Shift(s)
		var zero A
		return zero
	}
}

// Invoke runs c inside the caller's scope: a shift in c shifts e.
// It is the direct-style counterpart of Bind for programs.
func (c Cont[S, A]) Invoke(e Effect[S]) A {
	return c(e)
}
