// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Go error adapter: a scope whose shift type is error, folded back into
// the usual (value, error) pair.

// Try runs body in a scope and returns (result, nil) on completion or
// (zero, err) when body shifted err.
//
// Example:
//
//	port, err := Try(func(e Effect[error]) int {
//	    n, err := strconv.Atoi(s)
//	    n = BindErr(e, n, err)
//	    Ensure(e, n > 0, func() error { return errBadPort })
//	    return n
//	})
func Try[A any](body func(Effect[error]) A) (A, error) {
	out := Reset(body)
	if err, ok := out.ShiftedValue(); ok {
		var zero A
		return zero, err
	}
	a, _ := out.Result()
	return a, nil
}

// Check shifts err when it is non-nil.
func Check(e Effect[error], err error) {
	if err != nil {
		e.Shift(err)
	}
}

// BindErr returns v when err is nil and shifts err otherwise.
func BindErr[A any](e Effect[error], v A, err error) A {
	if err != nil {
		e.Shift(err)
	}
	return v
}
