// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/slot"
)

func TestExprSendThenRecvBranch(t *testing.T) {
	tx, rx := slot.New[int]()

	slot.ExecExpr(slot.ExprSendThen(tx, 17, kont.ExprReturn(struct{}{})))
	got := slot.ExecExpr(slot.ExprRecvBranch(rx,
		func(n int) kont.Expr[int] { return slot.ExprCloseDone(rx, n) },
		func() kont.Expr[int] { return slot.ExprCloseDone(rx, -1) },
	))
	if got != 17 {
		t.Fatalf("got %d, want 17", got)
	}
	tx.Close()
}

func TestExprRecvBranchClosed(t *testing.T) {
	tx, rx := slot.New[int]()
	tx.Close()

	got := slot.ExecExpr(slot.ExprRecvBranch(rx,
		func(n int) kont.Expr[string] { return slot.ExprCloseDone(rx, "value") },
		func() kont.Expr[string] { return slot.ExprCloseDone(rx, "closed") },
	))
	if got != "closed" {
		t.Fatalf("got %q, want %q", got, "closed")
	}
}

func TestExprCloseDoneCompletes(t *testing.T) {
	tx, rx := slot.New[int]()

	if got := slot.ExecExpr(slot.ExprCloseDone(tx, 5)); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
	if !rx.Closed() {
		t.Fatal("channel should be closed")
	}
}

func TestExprLoopCountsDeliveries(t *testing.T) {
	tx, rx := slot.New[int]()

	for i := 0; i < 4; i++ {
		if err := tx.Send(i); err != nil {
			t.Fatalf("Send error: %v", err)
		}
		got := slot.ExecExpr(slot.ExprRecvBranch(rx,
			func(v int) kont.Expr[int] { return kont.ExprReturn(v) },
			func() kont.Expr[int] { return kont.ExprReturn(-1) },
		))
		if got != i {
			t.Fatalf("delivery %d got %d", i, got)
		}
	}
	tx.Close()

	// After close the loop takes the closed branch immediately.
	count := slot.ExecExpr(slot.ExprLoop(0, func(seen int) kont.Expr[kont.Either[int, int]] {
		return slot.ExprRecvBranch(rx,
			func(int) kont.Expr[kont.Either[int, int]] {
				return kont.ExprReturn(kont.Left[int, int](seen + 1))
			},
			func() kont.Expr[kont.Either[int, int]] {
				return slot.ExprCloseDone(rx, kont.Right[int](seen))
			},
		)
	}))
	if count != 0 {
		t.Fatalf("loop consumed %d values after close, want 0", count)
	}
}
