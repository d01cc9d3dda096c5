// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestClaimFirstTakeWins(t *testing.T) {
	var c claim
	if !c.take() {
		t.Fatal("first take must succeed")
	}
	if c.take() {
		t.Fatal("second take must fail")
	}
}

func TestClaimConcurrent(t *testing.T) {
	for range 100 {
		var c claim
		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c.take() {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		if n := wins.Load(); n != 1 {
			t.Fatalf("got %d winners, want 1", n)
		}
	}
}

func TestScopeEndedAfterReset(t *testing.T) {
	var sc *scope[int]
	Reset(func(e Effect[int]) int {
		sc = e.(*scope[int])
		if sc.ended.Load() != 0 {
			t.Fatal("scope ended while body is running")
		}
		return 0
	})
	if sc.ended.Load() == 0 {
		t.Fatal("scope still live after Reset returned")
	}
}
