// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a channel protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if
// pending. The suspension is the awaitable: an external runtime
// advances it with Advance or AdvanceWake.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended channel operation.
// Dispatch is non-blocking: it returns iox.ErrWouldBlock when the
// channel cannot make progress (the suspension boundary).
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion. On iox.ErrWouldBlock, the
// suspension is unconsumed and may be retried after the channel makes
// progress.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	sop, ok := susp.Op().(slotDispatcher)
	if !ok {
		panic("slot: unhandled effect in Advance")
	}
	v, err := sop.DispatchSlot()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// AdvanceWake is Advance with suspension support: when the operation
// would block, the waker w is registered on the channel before
// returning iox.ErrWouldBlock, so the runtime can park the protocol
// and retry only after w fires. Operations that never suspend are
// dispatched as by Advance.
func AdvanceWake[R any](susp *kont.Suspension[R], w Waker) (R, *kont.Suspension[R], error) {
	var v kont.Resumed
	var err error
	switch op := susp.Op().(type) {
	case slotPoller:
		v, err = op.PollSlot(w)
	case slotDispatcher:
		v, err = op.DispatchSlot()
	default:
		panic("slot: unhandled effect in AdvanceWake")
	}
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
