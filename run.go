// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run interleaves two Cont-world channel protocols on the calling
// goroutine and returns both results, backing off (iox.Backoff) when
// neither side can make progress. Typically one side sends over a
// channel the other side receives from, such as a request/response
// pair. Does not spawn goroutines or create Go channels.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr interleaves two Expr-world channel protocols on the calling
// goroutine and returns both results, backing off (iox.Backoff) when
// neither side can make progress. Does not spawn goroutines or create
// Go channels.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var sopA slotDispatcher
	if suspA != nil {
		sopA = suspA.Op().(slotDispatcher)
	}
	var sopB slotDispatcher
	if suspB != nil {
		sopB = suspB.Op().(slotDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := sopA.DispatchSlot()
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					sopA = suspA.Op().(slotDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := sopB.DispatchSlot()
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					sopB = suspB.Op().(slotDispatcher)
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
