// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

// Close drains every slot that is still FULL and clears its cell so the
// garbage collector can reclaim whatever the contained T referenced.
// Slots that are EMPTY are left untouched.
//
// Close is the realization of the container's destructor (§4.1): Go has no
// last-holder callback the way an Arc-counted queue does, so the caller
// must call Close once it knows no other goroutine still holds a reference
// to the queue. Calling Close while a Send or Receive is concurrently in
// flight is a misuse of the API, exactly as dropping the queue underneath
// an in-flight operation would be in the source this behavior is ported
// from.
//
// If a drained element implements interface{ Close() error }, its Close is
// invoked and the first non-nil error is returned after every eligible
// slot has been drained, so one failing element's destructor never leaks
// the elements behind it.
func (q *Queue[T]) Close() error {
	var firstErr error
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadRelaxed()

	for p := tail; p != head; p++ {
		s := &q.buffer[p&q.mask]
		seq := s.seq.LoadAcquire()
		if int64(seq)-int64(p+1) != 0 {
			// Not FULL at this position: either already drained by a
			// consumer that raced us, or the slot belongs to a later
			// generation. Either way there is nothing here to destroy.
			continue
		}

		v := s.data
		var zero T
		s.data = zero

		if c, ok := any(v).(interface{ Close() error }); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
