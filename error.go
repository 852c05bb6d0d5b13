// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import "errors"

// ErrClosed reports that no further value exchange is possible on a
// channel: every sender has been released, or the receiver is gone.
//
// It is an ordinary result value, not a fatal condition. Callers treat
// it as "the other side hung up" and handle it in normal control flow.
// Non-blocking operations report a merely-not-ready channel as
// iox.ErrWouldBlock, never as ErrClosed.
var ErrClosed = errors.New("slot: channel closed")

// IsClosed reports whether err indicates a closed channel.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
