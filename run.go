// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Run executes a Cont in a fresh scope.
func Run[S, A any](c Cont[S, A]) Outcome[S, A] {
	return Reset[S, A](c)
}

// Fold runs c in a fresh scope and folds the outcome: recover receives
// a shifted value, transform a completed result.
func Fold[S, A, B any](c Cont[S, A], recover func(S) B, transform func(A) B) B {
	return MatchOutcome(Reset[S, A](c), recover, transform)
}
