// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Async scopes for external runtimes.
// Go runs a scope on its own goroutine; Poll observes it without blocking,
// so an event loop can drive many scopes the same way it drives I/O.

// Future is a scope running on its own goroutine.
// Its Outcome becomes visible exactly once, when the body returns or shifts.
type Future[S, R any] struct {
	done     atomix.Uint32
	out      Outcome[S, R]
	panicked *PanicError
}

// Go starts body in a new scope on a new goroutine.
// The body's capability is only valid on that goroutine and on branches
// it starts with Par or Race.
func Go[S, R any](body func(Effect[S]) R) *Future[S, R] {
	f := &Future[S, R]{}
	go f.run(body)
	return f
}

func (f *Future[S, R]) run(body func(Effect[S]) R) {
	defer func() {
		if r := recover(); r != nil {
			f.panicked = newPanicError(r)
		}
		f.done.Add(1)
	}()
	f.out = Reset(body)
}

// Poll returns the Outcome if the scope has finished, or
// iox.ErrWouldBlock while it is still running.
// If the body panicked, Poll re-panics with the captured *PanicError.
func (f *Future[S, R]) Poll() (Outcome[S, R], error) {
	if f.done.Load() == 0 {
		var zero Outcome[S, R]
		return zero, iox.ErrWouldBlock
	}
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.out, nil
}

// Done reports whether the scope has finished.
func (f *Future[S, R]) Done() bool {
	return f.done.Load() != 0
}

// Wait blocks until the scope finishes, backing off adaptively
// (iox.Backoff) instead of parking on a channel.
func (f *Future[S, R]) Wait() Outcome[S, R] {
	var bo iox.Backoff
	for {
		out, err := f.Poll()
		if err == nil {
			return out
		}
		bo.Wait()
	}
}

// WaitAll waits for every future and returns their outcomes in order.
// WaitAll panics if any future is nil.
func WaitAll[S, R any](fs ...*Future[S, R]) []Outcome[S, R] {
	outs := make([]Outcome[S, R], len(fs))
	seen := make([]bool, len(fs))
	for i, f := range fs {
		if f == nil {
			panic(fmt.Sprintf("delim: WaitAll future[%d] must not be nil", i))
		}
	}
	var bo iox.Backoff
	for pending := len(fs); pending > 0; {
		progress := false
		for i, f := range fs {
			if seen[i] || !f.Done() {
				continue
			}
			outs[i], _ = f.Poll()
			seen[i] = true
			pending--
			progress = true
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return outs
}
