// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim_test

import (
	"testing"

	"code.hybscloud.com/delim"
)

func TestResetAllocationsNoShift(t *testing.T) {
	body := func(e delim.Effect[string]) int { return 42 }
	allocs := testing.AllocsPerRun(100, func() {
		_ = delim.Reset(body)
	})
	if allocs > 1 {
		t.Errorf("Reset without shift allocs = %v; want <= 1", allocs)
	}
}
