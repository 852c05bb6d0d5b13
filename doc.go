// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slot provides a lock-free single-slot channel: any number of
// producers deliver at most one pending value to a single consumer,
// with no OS locks anywhere on the path. It is the primitive under
// futures, notifiers and request/response actors.
//
// # Architecture
//
//   - Core: one shared block per channel holding an atomic state tag
//     ([code.hybscloud.com/atomix]), a one-slot value cell and a
//     one-slot waker cell. All transitions are CAS-retry; contenders
//     re-read and retry, never block.
//   - Non-blocking: [Sender.Send] never suspends; [Receiver.TryRecv]
//     returns [code.hybscloud.com/iox.ErrWouldBlock] when nothing is
//     pending.
//   - Suspension: [Receiver.Poll] registers a [Waker] and yields; the
//     waker fires only after the value is published (store-then-wake).
//     [Receiver.Recv] is the built-in blocking driver.
//   - Overwrite policy: a send into an unread slot replaces the value;
//     only the newest message is meaningful, which fits the
//     single-in-flight request/response use this primitive targets.
//   - Closing: releasing the last [Sender], or the [Receiver], closes
//     the channel. Closed sends return [ErrClosed]; a suspended
//     receive is woken and resolves to [ErrClosed]; any undelivered
//     value is dropped. Closing is one-way.
//
// # API Topologies
//
//   - Handles: [New], [Sender] (cloneable), [Receiver] (unique).
//   - Operations: [Send], [Recv], [Close] as effects on
//     [code.hybscloud.com/kont].
//   - Cont-world: [SendThen], [RecvBranch], [CloseDone], [Loop].
//   - Expr-world: zero-allocation variants [ExprSendThen],
//     [ExprRecvBranch], [ExprCloseDone], [ExprLoop]. Bridge via
//     [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step], [Advance] and [AdvanceWake] evaluate protocols
//     one effect at a time; [AdvanceWake] registers a waker on the
//     would-block boundary so an external scheduler parks instead of
//     polling.
//   - Blocking: [Exec], [ExecExpr] and [Run], [RunExpr] wait past
//     boundaries by parking on the channel waker with adaptive
//     backoff.
//
// # Example
//
//	tx, rx := slot.New[int]()
//	go func() {
//		tx.Send(42)
//		tx.Close()
//	}()
//	v, err := rx.Recv() // 42, nil
//	_, err = rx.Recv()  // 0, slot.ErrClosed
package slot
