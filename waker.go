// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Waker resumes a suspended consumer. It is provided by whatever drives
// the receive side — an external scheduler, a stepping loop, or the
// built-in blocking driver — and is invoked at most once per
// registration, after the value (or closure) it is woken for has been
// published.
//
// A registered Waker is owned by the channel until it is either invoked
// or replaced by a later registration; replaced wakers are discarded
// without being invoked. A late Wake after the consumer has moved on is
// permitted and must be harmless.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake implements Waker.
func (f WakerFunc) Wake() { f() }

// gate is the parking waker used by the blocking Recv driver.
// Wake sets a flag; wait spins it down with adaptive backoff.
// No goroutines, no Go channels, usable in allocation-constrained code.
type gate struct {
	fired atomix.Uint32
}

// Wake implements Waker.
func (g *gate) Wake() {
	g.fired.Store(1)
}

// wait blocks until Wake has been called since the last reset,
// backing off with iox.Backoff.
func (g *gate) wait() {
	var bo iox.Backoff
	for g.fired.Load() == 0 {
		bo.Wait()
	}
}

// reset re-arms the gate for the next registration.
func (g *gate) reset() {
	g.fired.Store(0)
}
