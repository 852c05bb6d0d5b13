// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Channel state tags. All coordination goes through CAS on the tag;
// there is no lock and no OS syscall anywhere on these paths.
//
// stateBusy is the transient claim taken by the one operation that wins
// a transition while it moves the value or waker slot. Losers re-read
// the tag and retry; they never block. The claim window is a handful of
// plain stores between two atomic operations on the tag.
const (
	stateEmpty   uint32 = iota // no value, no waiter
	stateFull                  // value resident, no waiter
	stateWaiting               // waker resident, no value
	stateClosed                // terminal
	stateBusy                  // transient slot claim
)

// core is the shared block behind a Sender/Receiver pair: the state
// tag, the one-slot value cell, the one-slot waker cell, and the
// live-sender count. It is the only shared mutable state in the
// package.
//
// Slot invariants, observable at any non-busy instant:
//   - value is populated iff the tag is stateFull
//   - waker is populated iff the tag is stateWaiting
//   - once stateClosed, the tag never changes again
type core[T any] struct {
	state   atomix.Uint32
	senders atomix.Uint32
	value   T
	waker   Waker
	serial  Serial
}

// claim CASes the tag from s to stateBusy, granting exclusive slot
// access until the caller publishes a successor tag.
func (c *core[T]) claim(s uint32) bool {
	return c.state.CompareAndSwap(s, stateBusy)
}

// send deposits v, overwriting any unread prior value (last write
// wins), and wakes a waiting consumer after the value is published.
// Non-blocking: a bounded CAS-retry loop, never a suspension.
func (c *core[T]) send(v T) error {
	var bo iox.Backoff
	for {
		switch c.state.Load() {
		case stateEmpty:
			if c.claim(stateEmpty) {
				c.value = v
				c.state.Store(stateFull)
				return nil
			}
		case stateFull:
			if c.claim(stateFull) {
				c.value = v // overwrite: the unread value is dropped
				c.state.Store(stateFull)
				return nil
			}
		case stateWaiting:
			if c.claim(stateWaiting) {
				c.value = v
				w := c.waker
				c.waker = nil
				// Publish the value before waking: the Store is the
				// release point the woken consumer's poll acquires.
				c.state.Store(stateFull)
				w.Wake()
				return nil
			}
		case stateClosed:
			return ErrClosed
		}
		bo.Wait()
	}
}

// tryRecv takes the resident value if there is one.
// Returns iox.ErrWouldBlock when nothing is pending yet, ErrClosed
// once the channel is closed.
func (c *core[T]) tryRecv() (T, error) {
	var zero T
	var bo iox.Backoff
	for {
		switch c.state.Load() {
		case stateFull:
			if c.claim(stateFull) {
				v := c.value
				c.value = zero
				c.state.Store(stateEmpty)
				return v, nil
			}
		case stateEmpty, stateWaiting:
			return zero, iox.ErrWouldBlock
		case stateClosed:
			return zero, ErrClosed
		}
		bo.Wait()
	}
}

// poll is the suspension step of recv. If a value is resident it is
// taken immediately (ok=true). Otherwise w is registered, replacing
// any previously registered waker (which is discarded uninvoked), and
// poll reports ok=false: the caller suspends until w fires, then polls
// again. Spurious wakes simply land back here.
func (c *core[T]) poll(w Waker) (T, bool, error) {
	var zero T
	var bo iox.Backoff
	for {
		switch c.state.Load() {
		case stateFull:
			if c.claim(stateFull) {
				v := c.value
				c.value = zero
				c.state.Store(stateEmpty)
				return v, true, nil
			}
		case stateEmpty:
			if c.claim(stateEmpty) {
				c.waker = w
				c.state.Store(stateWaiting)
				return zero, false, nil
			}
		case stateWaiting:
			if c.claim(stateWaiting) {
				c.waker = w // last registrant wins
				c.state.Store(stateWaiting)
				return zero, false, nil
			}
		case stateClosed:
			return zero, false, ErrClosed
		}
		bo.Wait()
	}
}

// close transitions the core to stateClosed, dropping any resident
// value and invoking any resident waker so a suspended consumer
// observes closure promptly. Idempotent; closing is one-way.
func (c *core[T]) close() {
	var zero T
	var bo iox.Backoff
	for {
		s := c.state.Load()
		switch s {
		case stateEmpty, stateFull:
			if c.claim(s) {
				c.value = zero
				c.state.Store(stateClosed)
				return
			}
		case stateWaiting:
			if c.claim(stateWaiting) {
				w := c.waker
				c.waker = nil
				c.state.Store(stateClosed)
				w.Wake()
				return
			}
		case stateClosed:
			return
		}
		bo.Wait()
	}
}

// closed reports whether the core has reached the terminal state.
func (c *core[T]) closed() bool {
	return c.state.Load() == stateClosed
}

// New creates a single-slot channel and returns its handle pair: a
// cloneable Sender and the unique Receiver. The pair shares one core
// allocation; everything after construction is allocation-free.
//
// The channel holds at most one undelivered value. A send into an
// unread slot overwrites it: only the newest value is meaningful,
// which fits the single-in-flight request/response use this primitive
// targets. The channel closes when every Sender has been released or
// the Receiver has, whichever comes first.
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := &core[T]{serial: nextSerial()}
	c.senders.Store(1)
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}
