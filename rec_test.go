// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/slot"
)

func TestLoopAccumulates(t *testing.T) {
	// Producer counts 0..4 into the channel, consumer loop sums until
	// the channel closes. Each round trips through a fresh ping
	// channel so the single slot is consumed before the next send.
	dataTx, dataRx := slot.New[int]()
	ackTx, ackRx := slot.New[struct{}]()

	producer := slot.Loop(0, func(i int) kont.Eff[kont.Either[int, string]] {
		if i >= 5 {
			return slot.CloseDone(dataTx, kont.Right[int]("done"))
		}
		return slot.SendThen(dataTx, i,
			slot.RecvBranch(ackRx,
				func(struct{}) kont.Eff[kont.Either[int, string]] {
					return kont.Pure(kont.Left[int, string](i + 1))
				},
				func() kont.Eff[kont.Either[int, string]] {
					return kont.Pure(kont.Right[int, string]("ack channel closed"))
				},
			),
		)
	})

	consumer := slot.Loop(0, func(acc int) kont.Eff[kont.Either[int, int]] {
		return slot.RecvBranch(dataRx,
			func(n int) kont.Eff[kont.Either[int, int]] {
				return slot.SendThen(ackTx, struct{}{},
					kont.Pure(kont.Left[int, int](acc+n)),
				)
			},
			func() kont.Eff[kont.Either[int, int]] {
				return slot.CloseDone(ackTx, kont.Right[int](acc))
			},
		)
	})

	producerResult, sum := slot.Run(producer, consumer)
	if producerResult != "done" {
		t.Fatalf("producer got %q, want %q", producerResult, "done")
	}
	// 0+1+2+3+4 = 10
	if sum != 10 {
		t.Fatalf("consumer got %d, want 10", sum)
	}
}

func TestExprLoopImmediateReturn(t *testing.T) {
	// A step that completes without effects short-circuits through
	// the pure fast path.
	got := slot.ExecExpr(slot.ExprLoop(3, func(n int) kont.Expr[kont.Either[int, int]] {
		if n == 0 {
			return kont.ExprReturn(kont.Right[int](42))
		}
		return kont.ExprReturn(kont.Left[int, int](n - 1))
	}))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
