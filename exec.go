// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/kont"
)

// slotHandler implements kont.Handler for channel effects.
// Waits past the iox.ErrWouldBlock boundary by parking on the
// operation's registered waker, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap
// allocation.
type slotHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (slotHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	switch sop := op.(type) {
	case slotPoller:
		return pollWait(sop), true
	case slotDispatcher:
		v, err := sop.DispatchSlot()
		if err != nil {
			panic("slot: non-suspending operation reported would-block")
		}
		return v, true
	}
	panic("slot: unhandled effect in slotHandler")
}

// pollWait blocks until PollSlot succeeds, parking on a gate waker
// between attempts. The gate is re-armed before each poll so a wake
// published between poll and wait is never lost.
func pollWait(sop slotPoller) kont.Resumed {
	var g gate
	for {
		v, err := sop.PollSlot(&g)
		if err == nil {
			return v
		}
		g.wait()
		g.reset()
	}
}

// Exec runs a Cont-world channel protocol to completion on the calling
// goroutine. Suspended receives park on the channel's waker with
// adaptive backoff; no goroutines are spawned and no Go channels are
// created.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, slotHandler[R]{})
}

// ExecExpr runs an Expr-world channel protocol to completion on the
// calling goroutine. Suspended receives park on the channel's waker
// with adaptive backoff; no goroutines are spawned and no Go channels
// are created.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, slotHandler[R]{})
}
