// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Resource safety across shifts.
// A shift unwinds the Go stack, so deferred calls run as usual; these
// helpers add the bracket shape and let cleanup tell a shift apart from
// a normal return without catching the shift.

// Bracket acquires a resource, uses it, and always releases it.
// release receives shifted == true when use was aborted by a shift,
// which then continues unwinding to its scope after release returns.
// A foreign panic in use also runs release (with shifted == false) and
// keeps propagating.
func Bracket[R, A any](acquire func() R, release func(r R, shifted bool), use func(R) A) A {
	r := acquire()
	done := false
	defer func() {
		if done {
			return
		}
		p := recover()
		_, shifted := p.(signal)
		release(r, shifted)
		if p != nil {
			panic(p)
		}
	}()
	a := use(r)
	done = true
	release(r, false)
	return a
}

// OnShift runs body and, only if a shift unwinds through it, calls
// cleanup before letting the shift continue. Normal returns and foreign
// panics do not call cleanup.
func OnShift[A any](body func() A, cleanup func()) A {
	done := false
	defer func() {
		if done {
			return
		}
		p := recover()
		if p == nil {
			return // runtime.Goexit
		}
		if _, ok := p.(signal); ok {
			cleanup()
		}
		panic(p)
	}()
	a := body()
	done = true
	return a
}
