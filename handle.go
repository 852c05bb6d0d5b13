// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import "code.hybscloud.com/atomix"

// Handle is the capability surface common to both sides of a channel.
// Close releases the handle; release is idempotent and participates in
// the close accounting (last sender out, or the receiver, closes the
// channel).
type Handle interface {
	Close()
	Serial() Serial
	Closed() bool
}

// Sender is the producing capability of a channel. It is cloneable:
// any number of goroutines may hold their own Sender and send
// independently. The zero Sender is invalid; obtain one from New or
// Clone.
type Sender[T any] struct {
	c        *core[T]
	released atomix.Uint32
}

// Send deposits v in the channel. Non-blocking: it performs a bounded
// CAS-retry loop and returns immediately, never suspending the caller.
// An unread prior value is overwritten (last write wins). Returns
// ErrClosed once the channel — or this handle — has been released.
func (s *Sender[T]) Send(v T) error {
	if s.released.Load() != 0 {
		return ErrClosed
	}
	return s.c.send(v)
}

// Clone returns a new Sender for the same channel and increments the
// live-sender count. Cloning a released Sender is a programming error.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.released.Load() != 0 {
		panic("slot: clone of released sender")
	}
	s.c.senders.Add(1)
	return &Sender[T]{c: s.c}
}

// Close releases this Sender. When the last live Sender is released
// the channel closes: a suspended receive resolves to ErrClosed and
// any undelivered value is dropped. Idempotent.
func (s *Sender[T]) Close() {
	if !s.released.CompareAndSwap(0, 1) {
		return
	}
	if s.c.senders.Add(^uint32(0)) == 0 { // decrement
		s.c.close()
	}
}

// Serial returns the serial number assigned to this handle's channel.
func (s *Sender[T]) Serial() Serial {
	return s.c.serial
}

// Closed reports whether the channel has closed.
func (s *Sender[T]) Closed() bool {
	return s.c.closed()
}

// Receiver is the consuming capability of a channel. Exactly one
// Receiver exists per channel — it is issued by New and is not
// cloneable — so at most one consumer may be suspended at a time.
type Receiver[T any] struct {
	c        *core[T]
	released atomix.Uint32
}

// TryRecv takes the pending value if one is resident.
// Non-blocking: returns iox.ErrWouldBlock when no value is pending
// yet, ErrClosed once the channel is closed.
func (r *Receiver[T]) TryRecv() (T, error) {
	if r.released.Load() != 0 {
		var zero T
		return zero, ErrClosed
	}
	return r.c.tryRecv()
}

// Poll attempts to take the pending value, registering w on failure.
//
// This is the suspension point: ok=true delivers the value; ok=false
// means w was registered (replacing any earlier registration, which is
// discarded uninvoked) and the caller should yield to its scheduler
// until w fires, then Poll again. Being woken with nothing ready is
// not an error — Poll again and re-suspend. Returns ErrClosed once the
// channel is closed; polling a closed channel is idempotent.
func (r *Receiver[T]) Poll(w Waker) (T, bool, error) {
	if r.released.Load() != 0 {
		var zero T
		return zero, false, ErrClosed
	}
	return r.c.poll(w)
}

// Recv blocks until a value arrives or the channel closes, without
// spawning goroutines or creating Go channels. It drives the Poll
// contract with a parking-gate waker, waiting past each suspension
// with adaptive backoff (iox.Backoff).
func (r *Receiver[T]) Recv() (T, error) {
	var g gate
	for {
		v, ok, err := r.Poll(&g)
		if err != nil || ok {
			return v, err
		}
		g.wait()
		g.reset()
	}
}

// Close releases the Receiver and closes the channel immediately:
// subsequent sends return ErrClosed without blocking or allocating,
// and any undelivered value is dropped. Idempotent.
func (r *Receiver[T]) Close() {
	if !r.released.CompareAndSwap(0, 1) {
		return
	}
	r.c.close()
}

// Serial returns the serial number assigned to this handle's channel.
func (r *Receiver[T]) Serial() Serial {
	return r.c.serial
}

// Closed reports whether the channel has closed.
func (r *Receiver[T]) Closed() bool {
	return r.c.closed()
}
