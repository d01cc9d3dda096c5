// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delim provides direct-style delimited continuations with a
// one-shot, typed Shift in Go.
//
// [Reset] establishes a delimited scope and hands its body an [Effect]
// capability. Calling [Effect.Shift] through that capability abandons the
// rest of the body and makes the scope produce the shifted value; otherwise
// the scope produces the body's own result. Either way the caller receives
// an [Outcome].
//
// # Design Philosophy
//
// delim provides:
//   - One control primitive: a typed, scope-bound, non-resumable early exit
//   - Identity-tagged catching: a scope recovers only signals raised through
//     its own capability, never a structurally equal one from another scope
//   - Adapters (Option, Either, Go errors) built from Reset and Shift alone
//
// Shift unwinds with panic and Reset recovers it; the no-shift path costs
// one scope allocation and a deferred recover. Panics that are not shift
// signals are never converted into outcomes.
//
// # Scope Engine
//
//   - [Reset]: Run a body in a fresh scope, returning [Outcome]
//   - [ResetOutcome]: Reset for bodies that already produce an Outcome
//   - [ErrScopeEnded]: Panicked by Shift on a capability that outlived its scope
//   - [ErrShiftEscaped]: Reported by a signal that unwound past every scope
//
// # Outcome
//
//   - [Completed], [Shifted]: Constructors
//   - [Outcome.IsCompleted], [Outcome.IsShifted]: Predicates
//   - [Outcome.Result], [Outcome.ShiftedValue]: Accessors
//   - [MatchOutcome], [MapOutcome], [MapShifted], [FlatMapOutcome]: Combinators
//
// # Effect Capability
//
// Derived operations are built purely on Shift:
//
//   - [Effect]: The capability interface
//   - [Carrier]: A value or a carried absence/failure; implemented by
//     [Outcome], [Option] and [EitherOf]
//   - [Bind]: Unwrap a Carrier or shift its carried value
//   - [Ensure]: Shift unless a condition holds
//   - [EnsureNotNil]: Shift on a nil pointer (runtime check only; Go has no
//     flow-sensitive nullability)
//   - [EnsureOK]: Shift on a false comma-ok result
//
// # Concurrent Branches
//
// A shift cannot unwind another goroutine. Branches started with [Par] or
// [Race] run under a supervisor that recovers the first shift, cancels the
// siblings' context, waits for every branch, and re-raises the shift on the
// caller's goroutine. Later shifts are discarded.
//
//   - [Par]: Run all branches; the first shift wins
//   - [Race]: First completion or first shift wins
//   - [RaceOutcome]: Race independent scopes
//   - [Guard]: Cancellation checkpoint that shifts when ctx is done
//   - [PanicError]: A branch panic, re-panicked after the join
//
// # Async Scopes
//
//   - [Go]: Run a scope on its own goroutine
//   - [Future.Poll]: Non-blocking; returns iox.ErrWouldBlock while running
//   - [Future.Wait], [WaitAll]: Wait with adaptive backoff
//
// # Cont
//
// [Cont] is a scoped program that has not run yet:
//
//   - [Pure], [Raise]: Constructors
//   - [Run], [Fold]: Execution
//   - [Map], [FlatMap]: Composition in the caller's scope
//   - [Recover], [RecoverWith], [Redeem], [RedeemWith]: Handle the shift
//
// # Adapters
//
//   - [RunOption], [OptionEffect], [OptionNotNil], [ToOption]: Optional values
//   - [RunEither], [BindEither], [BindError], [ToEither], [FromEither]: kont.Either
//   - [Try], [Check], [BindErr]: Go errors
//
// # Resource Safety
//
//   - [Bracket]: Acquire-use-release, release told whether use shifted
//   - [OnShift]: Cleanup only when a shift unwinds through
//
// # Example
//
//	out := delim.Reset(func(e delim.Effect[string]) int {
//	    ports := map[string]int{"http": 80}
//	    p, ok := ports["https"]
//	    return delim.EnsureOK(e, p, ok, func() string { return "no https port" })
//	})
//	// out.IsShifted() == true
//	// out.ShiftedValue() == "no https port"
package delim
