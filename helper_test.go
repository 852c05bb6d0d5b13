// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/slot"
)

// execExpr drives a protocol to completion via Step+Advance loop.
// Retries on iox.ErrWouldBlock (channel not ready yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](protocol kont.Expr[R]) R {
	result, susp := slot.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = slot.Advance(susp)
		if err != nil {
			continue
		}
	}
	return result
}

// recordWaker counts invocations, for asserting exactly-once wake
// delivery and that replaced registrations stay silent.
type recordWaker struct {
	wakes int
}

func (w *recordWaker) Wake() { w.wakes++ }
