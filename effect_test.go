// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim_test

import (
	"testing"

	"code.hybscloud.com/delim"
)

func TestBindPresent(t *testing.T) {
	out := delim.Reset(func(e delim.Effect[string]) int {
		return delim.Bind[string, int](e, delim.Completed[string](7))
	})
	got, ok := out.Result()
	if !ok || got != 7 {
		t.Fatalf("got %v, want Completed(7)", out)
	}
}

func TestBindAbsent(t *testing.T) {
	reached := false
	out := delim.Reset(func(e delim.Effect[string]) int {
		x := delim.Bind[string, int](e, delim.Shifted[string, int]("missing"))
		reached = true
		return x
	})
	v, ok := out.ShiftedValue()
	if !ok || v != "missing" {
		t.Fatalf("got %v, want Shifted(missing)", out)
	}
	if reached {
		t.Fatal("Bind returned on an absent carrier")
	}
}

func TestBindNestedOutcome(t *testing.T) {
	// Bind rethrows an inner scope's shift into the outer scope
	out := delim.Reset(func(outer delim.Effect[int]) string {
		inner := delim.Reset(func(inner delim.Effect[int]) string {
			inner.Shift(3)
			return ""
		})
		return delim.Bind[int, string](outer, inner)
	})
	v, ok := out.ShiftedValue()
	if !ok || v != 3 {
		t.Fatalf("got %v, want Shifted(3)", out)
	}
}

func TestEnsure(t *testing.T) {
	called := false
	out := delim.Reset(func(e delim.Effect[string]) int {
		delim.Ensure(e, true, func() string {
			called = true
			return "unused"
		})
		return 1
	})
	if !out.IsCompleted() {
		t.Fatal("Ensure(true) must not shift")
	}
	if called {
		t.Fatal("orElse called for a holding condition")
	}

	out = delim.Reset(func(e delim.Effect[string]) int {
		delim.Ensure(e, 1 > 2, func() string { return "false" })
		return 1
	})
	v, ok := out.ShiftedValue()
	if !ok || v != "false" {
		t.Fatalf("got %v, want Shifted(false)", out)
	}
}

func TestEnsureNotNil(t *testing.T) {
	five := 5
	out := delim.Reset(func(e delim.Effect[string]) int {
		p := delim.EnsureNotNil(e, &five, func() string { return "nil" })
		return *p
	})
	got, ok := out.Result()
	if !ok || got != 5 {
		t.Fatalf("got %v, want Completed(5)", out)
	}

	out = delim.Reset(func(e delim.Effect[string]) int {
		var p *int
		p = delim.EnsureNotNil(e, p, func() string { return "nil" })
		return *p // not reached
	})
	v, ok := out.ShiftedValue()
	if !ok || v != "nil" {
		t.Fatalf("got %v, want Shifted(nil)", out)
	}
}

func TestEnsureOK(t *testing.T) {
	ports := map[string]int{"http": 80}
	lookup := func(name string) delim.Outcome[string, int] {
		return delim.Reset(func(e delim.Effect[string]) int {
			p, ok := ports[name]
			return delim.EnsureOK(e, p, ok, func() string { return "no port for " + name })
		})
	}

	got, ok := lookup("http").Result()
	if !ok || got != 80 {
		t.Fatalf("got %d, want 80", got)
	}
	v, ok := lookup("https").ShiftedValue()
	if !ok || v != "no port for https" {
		t.Fatalf("got %q, want %q", v, "no port for https")
	}
}

func TestDerivedCapabilityDelegates(t *testing.T) {
	// A user-defined capability that fixes the shift value
	out := delim.Reset(func(e delim.Effect[string]) int {
		d := notFound{inner: e}
		d.Require(false)
		return 0
	})
	v, _ := out.ShiftedValue()
	if v != "not found" {
		t.Fatalf("got %q, want %q", v, "not found")
	}
}

type notFound struct{ inner delim.Effect[string] }

func (n notFound) Shift(s string) { n.inner.Shift(s) }

func (n notFound) Require(cond bool) {
	delim.Ensure[string](n, cond, func() string { return "not found" })
}
