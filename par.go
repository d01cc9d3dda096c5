// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Concurrent branches inside a scope.
// A shift raised on a branch goroutine cannot unwind the goroutine running
// Reset, so branches run under a group that recovers the signal, cancels
// the siblings, waits for all of them, and re-raises the signal on the
// joining goroutine where the owning Reset can catch it.

var (
	errBranchShifted  = errors.New("delim: sibling branch shifted")
	errBranchPanicked = errors.New("delim: sibling branch panicked")
	errRaceWon        = errors.New("delim: race already won")
)

// group supervises the goroutines of one Par or Race call.
type group struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	wg     sync.WaitGroup

	won claim  // first shift or, in Race, first completion
	sig signal // winning shift signal, if a shift won

	panics   claim
	panicked *PanicError
}

func newGroup(parent context.Context) *group {
	ctx, cancel := context.WithCancelCause(parent)
	return &group{ctx: ctx, cancel: cancel}
}

// spawn runs fn on a new goroutine under the group's supervision.
func (g *group) spawn(fn func(ctx context.Context)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.recover()
		fn(g.ctx)
	}()
}

// recover must be deferred directly by the branch goroutine.
func (g *group) recover() {
	r := recover()
	if r == nil {
		return
	}
	if sig, ok := r.(signal); ok {
		if g.won.take() {
			g.sig = sig
			g.cancel(errBranchShifted)
		}
		return
	}
	if g.panics.take() {
		g.panicked = newPanicError(r)
	}
	g.cancel(errBranchPanicked)
}

// join waits for every branch, then re-raises the first panic or, failing
// that, the winning shift signal on the calling goroutine.
func (g *group) join() {
	g.wg.Wait()
	g.cancel(nil)
	if g.panicked != nil {
		panic(g.panicked)
	}
	if g.sig != nil {
		panic(g.sig)
	}
}

// Par runs every branch concurrently and returns their results in order.
//
// Branches may shift through any capability of an enclosing scope. The
// first shift wins: the remaining branches see their context cancelled,
// later shifts are discarded, and once every branch has returned the
// winning shift continues on the caller's goroutine as if the caller had
// invoked it. Panics in branches are re-panicked as *PanicError.
//
// Par returns only after all branch goroutines have exited. Cancellation
// is cooperative: branches should watch ctx or call Guard.
//
// Par panics if any branch is nil.
func Par[A any](ctx context.Context, branches ...func(context.Context) A) []A {
	checkBranches("Par", branches)
	results := make([]A, len(branches))
	if len(branches) == 0 {
		return results
	}
	g := newGroup(ctx)
	for i, fn := range branches {
		g.spawn(func(ctx context.Context) {
			results[i] = fn(ctx)
		})
	}
	g.join()
	return results
}

// Guard is a cancellation checkpoint: it shifts onDone(context.Cause(ctx))
// when ctx is done, and is a no-op otherwise.
//
// Inside a branch that already lost a Race or Par, the shift is discarded
// and only aborts the branch. Guard is also how an external deadline on
// ctx is turned into a Shifted outcome.
func Guard[S any](ctx context.Context, e Effect[S], onDone func(cause error) S) {
	if ctx.Err() != nil {
		e.Shift(onDone(context.Cause(ctx)))
	}
}

func checkBranches[A any](op string, branches []func(context.Context) A) {
	for i, fn := range branches {
		if fn == nil {
			panic(fmt.Sprintf("delim: %s branch[%d] must not be nil", op, i))
		}
	}
}
