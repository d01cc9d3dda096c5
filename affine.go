// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import "code.hybscloud.com/atomix"

// claim is a one-shot winner slot. The first take succeeds; every later
// take, from any goroutine, fails. Concurrent shifts and completions race
// for it, and the losers are discarded rather than queued.
type claim struct {
	used atomix.Uint32
}

// take reports whether the caller is the first to claim.
func (c *claim) take() bool {
	return c.used.Add(1) == 1
}
