// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

import "code.hybscloud.com/spin"

// Receive removes and returns the next available element.
//
// Returns the zero value and ErrWouldBlock if the queue is empty, leaving
// every position and sequence unchanged. Receive never blocks.
func (q *Queue[T]) Receive() (T, error) {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		s := &q.buffer[tail&q.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(tail+1)

		switch {
		case diff == 0:
			// FULL-at-tail: try to claim it.
			if q.tail.CompareAndSwapRelaxed(tail, tail+1) {
				v := s.data
				var zero T
				s.data = zero
				s.seq.StoreRelease(tail + q.capacity)
				return v, nil
			}
			// Lost the CAS race; another consumer claimed this slot.
		case diff < 0:
			// BEHIND: looks empty. Cross-check against head before giving up.
			head := q.head.LoadAcquire()
			if head == tail {
				var zero T
				return zero, ErrWouldBlock
			}
			// Transient: head has since moved, retry with a fresh tail.
		default:
			// AHEAD: another consumer is mid-transition on this slot.
		}
		sw.Once()
	}
}
