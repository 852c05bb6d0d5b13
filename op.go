// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// slotDispatcher is the structural interface for channel operations.
// DispatchSlot is non-blocking: it returns iox.ErrWouldBlock at the
// suspension boundary when the channel cannot make progress. Closure
// is not a dispatch error; it resolves the operation with a Left
// value, since a hung-up peer is ordinary control flow.
type slotDispatcher interface {
	DispatchSlot() (kont.Resumed, error)
}

// slotPoller is the waker-registering variant of dispatch, implemented
// by operations that can suspend. On iox.ErrWouldBlock the supplied
// Waker has been registered and fires once the operation can progress.
type slotPoller interface {
	PollSlot(w Waker) (kont.Resumed, error)
}

// sentOK and sentClosed are pre-boxed Resumed values for Send
// dispatch, avoiding a per-dispatch heap escape on the hot path.
var (
	sentOK     kont.Resumed = kont.Right[error](struct{}{})
	sentClosed kont.Resumed = kont.Left[error, struct{}](ErrClosed)
)

// Send is the effect operation for depositing a value of type T.
// Perform(Send[T]{To: tx, Value: v}) resolves to
// Either[error, struct{}]: Right once deposited, Left(ErrClosed) if
// the receiver is gone.
type Send[T any] struct {
	kont.Phantom[kont.Either[error, struct{}]]
	To    *Sender[T]
	Value T
}

// DispatchSlot handles Send on the channel. Send never suspends, so
// this never returns iox.ErrWouldBlock; an unread prior value is
// overwritten.
func (s Send[T]) DispatchSlot() (kont.Resumed, error) {
	if err := s.To.Send(s.Value); err != nil {
		return sentClosed, nil
	}
	return sentOK, nil
}

// Recv is the effect operation for taking the pending value.
// Perform(Recv[T]{From: rx}) resolves to Either[error, T]: Right with
// the value, Left(ErrClosed) once the channel has closed.
type Recv[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	From *Receiver[T]
}

// DispatchSlot handles Recv on the channel.
// Non-blocking: returns iox.ErrWouldBlock while no value is pending.
func (r Recv[T]) DispatchSlot() (kont.Resumed, error) {
	v, err := r.From.TryRecv()
	if err != nil {
		if iox.IsWouldBlock(err) {
			return nil, err
		}
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error](v), nil
}

// PollSlot handles Recv with suspension: on iox.ErrWouldBlock the
// waker w has been registered (replacing any earlier registration) and
// fires after a value or closure is published.
func (r Recv[T]) PollSlot(w Waker) (kont.Resumed, error) {
	v, ok, err := r.From.Poll(w)
	if err != nil {
		return kont.Left[error, T](err), nil
	}
	if !ok {
		return nil, iox.ErrWouldBlock
	}
	return kont.Right[error](v), nil
}

// Close is the effect operation for releasing a channel handle.
// Perform(Close{Handle: h}) releases h; the channel closes when the
// handle was the last sender or the receiver. Never blocks.
type Close struct {
	kont.Phantom[struct{}]
	Handle Handle
}

// DispatchSlot handles Close on the channel.
func (c Close) DispatchSlot() (kont.Resumed, error) {
	c.Handle.Close()
	return struct{}{}, nil
}
