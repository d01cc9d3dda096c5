// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"context"
	"fmt"
)

// Race runs every branch concurrently; the first branch to finish decides.
//
// If a branch returns normally first, its value is returned. If a branch
// shifts first, the shift continues on the caller's goroutine once every
// branch has returned. Either way the losing branches see their context
// cancelled with a cause, and their results and shifts are discarded.
// Panics in branches are re-panicked as *PanicError even when another
// branch already won.
//
// If branches is empty, Race returns the zero value.
//
// Race panics if any branch is nil.
func Race[A any](ctx context.Context, branches ...func(context.Context) A) A {
	checkBranches("Race", branches)
	var winner A
	if len(branches) == 0 {
		return winner
	}
	g := newGroup(ctx)
	for _, fn := range branches {
		g.spawn(func(ctx context.Context) {
			a := fn(ctx)
			if g.won.take() {
				winner = a
				g.cancel(errRaceWon)
			}
		})
	}
	g.join()
	return winner
}

// RaceOutcome races scoped bodies that each own an independent scope,
// returning the Outcome of the first to finish, Completed or Shifted.
// Unlike Race, a shift inside one body only resolves that body's scope.
func RaceOutcome[S, R any](ctx context.Context, bodies ...func(context.Context, Effect[S]) R) Outcome[S, R] {
	branches := make([]func(context.Context) Outcome[S, R], len(bodies))
	for i, body := range bodies {
		if body == nil {
			panic(fmt.Sprintf("delim: RaceOutcome body[%d] must not be nil", i))
		}
		branches[i] = func(ctx context.Context) Outcome[S, R] {
			return Reset(func(e Effect[S]) R { return body(ctx, e) })
		}
	}
	return Race(ctx, branches...)
}
