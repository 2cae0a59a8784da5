// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by Send when the queue is full and by Receive
// when the queue is empty. Both are genuine, non-transient observations —
// internal retries (AHEAD observations, spurious CAS failures) never reach
// the caller as an error.
//
// This aliases [iox.ErrWouldBlock] rather than minting a local sentinel, so
// callers composing this queue with other code in the same dependency
// stack can use a single errors.Is check across packages.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control-flow signal rather than a
// failure — true for ErrWouldBlock, false for everything else Close might
// return from a drained element's Close method.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or ErrWouldBlock.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
