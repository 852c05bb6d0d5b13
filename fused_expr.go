// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a heap
// escape when boxing ReturnFrame into kont.Frame per construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSendThen deposits a value and then continues with next.
// Fuses ExprPerform(Send[T]{...}) + ExprThen. As with SendThen, the
// send outcome is discarded: a closed channel drops the value and the
// protocol continues.
func ExprSendThen[T, B any](tx *Sender[T], v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Send[T]{To: tx, Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func recvBranchUnwind[T, B any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	onValue := data.(func(T) kont.Expr[B])
	onClosed := data2.(func() kont.Expr[B])
	e := current.(kont.Either[error, T])
	var result kont.Expr[B]
	if v, ok := e.GetRight(); ok {
		result = onValue(v)
	} else {
		result = onClosed()
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprRecvBranch takes the next value and passes it to onValue, or
// calls onClosed once the channel has closed.
// Fuses ExprPerform(Recv[T]{...}) + ExprBind + Either branch.
func ExprRecvBranch[T, B any](rx *Receiver[T], onValue func(T) kont.Expr[B], onClosed func() kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = onValue
	bf.Data2 = onClosed
	bf.Unwind = recvBranchUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{From: rx}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprCloseDone releases the handle and returns a.
// Fuses ExprPerform(Close{...}) + ExprThen + ExprReturn.
func ExprCloseDone[A any](h Handle, a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Close{Handle: h}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
