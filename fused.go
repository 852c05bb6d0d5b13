// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/kont"
)

// SendThen deposits a value and then continues with next.
// Fuses Perform(Send[T]{...}) + Then. The send outcome is discarded:
// if the receiver is already gone the value is dropped and the
// protocol continues, send-and-forget. Use kont.Bind with Send
// directly when the outcome matters.
func SendThen[T, B any](tx *Sender[T], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Send[T]{To: tx, Value: v}), next)
}

// RecvBranch takes the next value and passes it to onValue, or calls
// onClosed once the channel has closed.
// Fuses Perform(Recv[T]{...}) + Bind + Either branch.
func RecvBranch[T, B any](rx *Receiver[T], onValue func(T) kont.Eff[B], onClosed func() kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv[T]{From: rx}), func(e kont.Either[error, T]) kont.Eff[B] {
		if v, ok := e.GetRight(); ok {
			return onValue(v)
		}
		return onClosed()
	})
}

// CloseDone releases the handle and returns a.
// Fuses Perform(Close{...}) + Then + Pure.
func CloseDone[A any](h Handle, a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{Handle: h}), kont.Pure(a))
}
