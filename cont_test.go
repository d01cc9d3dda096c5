// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/delim"
)

// parse is a program that shifts a message on malformed input.
func parse(s string) delim.Cont[string, int] {
	return func(e delim.Effect[string]) int {
		n, err := strconv.Atoi(s)
		delim.Ensure(e, err == nil, func() string { return "bad number: " + s })
		return n
	}
}

func TestContPureAndRaise(t *testing.T) {
	if v, _ := delim.Run(delim.Pure[string](3)).Result(); v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
	if s, _ := delim.Run(delim.Raise[string, int]("no")).ShiftedValue(); s != "no" {
		t.Fatalf("got %q, want no", s)
	}
}

func TestContRunIsRepeatable(t *testing.T) {
	calls := 0
	c := delim.Cont[int, int](func(e delim.Effect[int]) int {
		calls++
		if calls == 1 {
			e.Shift(1)
		}
		return calls
	})
	first := delim.Run(c)
	second := delim.Run(c)
	if !first.IsShifted() || !second.IsCompleted() {
		t.Fatalf("got %v then %v, want Shifted then Completed", first, second)
	}
}

func TestFold(t *testing.T) {
	show := func(s string) string {
		return delim.Fold(parse(s),
			func(msg string) string { return "error: " + msg },
			func(n int) string { return "ok: " + strconv.Itoa(n) },
		)
	}
	if got := show("12"); got != "ok: 12" {
		t.Fatalf("got %q", got)
	}
	if got := show("x"); got != "error: bad number: x" {
		t.Fatalf("got %q", got)
	}
}

func TestContMap(t *testing.T) {
	doubled := delim.Map(parse("21"), func(n int) int { return n * 2 })
	if v, _ := delim.Run(doubled).Result(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	mapped := false
	failed := delim.Map(parse("x"), func(n int) int {
		mapped = true
		return n
	})
	if !delim.Run(failed).IsShifted() {
		t.Fatal("Map over a shifting program must shift")
	}
	if mapped {
		t.Fatal("Map function ran after a shift")
	}
}

func TestContFlatMap(t *testing.T) {
	sum := delim.FlatMap(parse("1"), func(a int) delim.Cont[string, int] {
		return delim.Map(parse("2"), func(b int) int { return a + b })
	})
	if v, _ := delim.Run(sum).Result(); v != 3 {
		t.Fatalf("got %d, want 3", v)
	}

	bad := delim.FlatMap(parse("1"), func(a int) delim.Cont[string, int] {
		return parse("y")
	})
	if s, _ := delim.Run(bad).ShiftedValue(); s != "bad number: y" {
		t.Fatalf("got %q", s)
	}
}

func TestContInvoke(t *testing.T) {
	out := delim.Reset(func(e delim.Effect[string]) int {
		return parse("4").Invoke(e) + parse("z").Invoke(e)
	})
	if s, _ := out.ShiftedValue(); s != "bad number: z" {
		t.Fatalf("got %q", s)
	}
}

func TestRecover(t *testing.T) {
	safe := delim.Recover[string, delim.None](parse("x"), func(string) int { return -1 })
	if v, ok := delim.Run(safe).Result(); !ok || v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
	passthrough := delim.Recover[string, delim.None](parse("5"), func(string) int { return -1 })
	if v, _ := delim.Run(passthrough).Result(); v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestRecoverWith(t *testing.T) {
	// Translate the shift type while handling it
	c := delim.RecoverWith(parse("x"), func(msg string) delim.Cont[int, int] {
		return delim.Raise[int, int](len(msg))
	})
	n, ok := delim.Run(c).ShiftedValue()
	if !ok || n != len("bad number: x") {
		t.Fatalf("got %d, want %d", n, len("bad number: x"))
	}

	fine := delim.RecoverWith(parse("8"), func(string) delim.Cont[int, int] {
		return delim.Pure[int](0)
	})
	if v, _ := delim.Run(fine).Result(); v != 8 {
		t.Fatalf("got %d, want 8", v)
	}
}

func TestRedeem(t *testing.T) {
	c := delim.Redeem[string, delim.None](parse("x"),
		func(string) bool { return false },
		func(int) bool { return true },
	)
	if v, _ := delim.Run(c).Result(); v {
		t.Fatal("expected false for a shifting program")
	}
}

func TestRedeemWith(t *testing.T) {
	c := delim.RedeemWith(parse("3"),
		func(msg string) delim.Cont[error, string] { return delim.Pure[error](msg) },
		func(n int) delim.Cont[error, string] { return delim.Pure[error](strconv.Itoa(n * n)) },
	)
	if v, _ := delim.Run(c).Result(); v != "9" {
		t.Fatalf("got %q, want 9", v)
	}
}
