// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"testing"
	"time"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/slot"
)

func TestExecParkedRecvCoverage(t *testing.T) {
	_, rx := slot.New[int]()
	protocol := slot.RecvBranch(rx,
		func(n int) kont.Eff[struct{}] { return slot.CloseDone(rx, struct{}{}) },
		func() kont.Eff[struct{}] { return slot.CloseDone(rx, struct{}{}) },
	)

	go func() {
		slot.Exec(protocol)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to park on the gate
}

func TestRunStalledRecvCoverage(t *testing.T) {
	_, rxA := slot.New[int]()
	_, rxB := slot.New[int]()
	a := slot.ExprRecvBranch(rxA,
		func(n int) kont.Expr[struct{}] { return slot.ExprCloseDone(rxA, struct{}{}) },
		func() kont.Expr[struct{}] { return slot.ExprCloseDone(rxA, struct{}{}) },
	)
	b := slot.ExprRecvBranch(rxB,
		func(n int) kont.Expr[struct{}] { return slot.ExprCloseDone(rxB, struct{}{}) },
		func() kont.Expr[struct{}] { return slot.ExprCloseDone(rxB, struct{}{}) },
	)

	go func() {
		slot.RunExpr(a, b)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to hit bo.Wait()
}
