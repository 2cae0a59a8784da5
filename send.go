// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

import "code.hybscloud.com/spin"

// Send moves *value into the queue.
//
// Returns nil once the element is visible to some future successful
// Receive at the corresponding position. Returns ErrWouldBlock if the
// queue is full; *value is left untouched, so the caller may retry,
// discard it, or route it elsewhere. Send never blocks.
func (q *Queue[T]) Send(value *T) error {
	sw := spin.Wait{}
	for {
		head := q.head.LoadRelaxed()
		s := &q.buffer[head&q.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(head)

		switch {
		case diff == 0:
			// EMPTY-at-head: try to claim it.
			if q.head.CompareAndSwapRelaxed(head, head+1) {
				s.data = *value
				s.seq.StoreRelease(head + 1)
				return nil
			}
			// Lost the CAS race; another producer claimed this slot.
		case diff < 0:
			// BEHIND: looks full. Cross-check against tail before giving up.
			tail := q.tail.LoadAcquire()
			if head-tail >= q.capacity {
				return ErrWouldBlock
			}
			// Transient: tail has since moved, retry with a fresh head.
		default:
			// AHEAD: another producer is mid-transition on this slot.
		}
		sw.Once()
	}
}
