// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

import "github.com/ringlane/mpmc/internal/simd4"

// Word64 is the set of element types the adaptive batch-of-four send/
// receive path accepts: homogeneous 64-bit primitives, mirroring the
// Simd64Bit trait in the source this module's batch path was ported from.
type Word64 interface {
	~uint64 | ~int64 | ~float64
}

// SendMany transfers as many leading elements of values as possible,
// returning how many were accepted. Remaining elements stay with the
// caller. Never reports failure when any progress is possible: a short
// count is the only failure signal the multi-element API has.
//
// SendMany opportunistically claims runs of four contiguous slots with one
// CAS guarded by a four-wide sequence comparison, falling back to Send for
// whatever a batch attempt can't cover.
func SendMany[T Word64](q *Queue[T], values []T) int {
	sent := 0
	for len(values) >= 4 {
		if q.trySendBatch(values[:4]) {
			sent += 4
			values = values[4:]
			continue
		}
		if err := q.Send(&values[0]); err != nil {
			return sent
		}
		sent++
		values = values[1:]
	}
	for len(values) > 0 {
		if err := q.Send(&values[0]); err != nil {
			return sent
		}
		sent++
		values = values[1:]
	}
	return sent
}

// ReceiveMany fills as much of buf as currently possible, returning how
// many elements were written. See SendMany for the batching strategy.
func ReceiveMany[T Word64](q *Queue[T], buf []T) int {
	received := 0
	for len(buf) >= 4 {
		if q.tryReceiveBatch(buf[:4]) {
			received += 4
			buf = buf[4:]
			continue
		}
		v, err := q.Receive()
		if err != nil {
			return received
		}
		buf[0] = v
		received++
		buf = buf[1:]
	}
	for len(buf) > 0 {
		v, err := q.Receive()
		if err != nil {
			return received
		}
		buf[0] = v
		received++
		buf = buf[1:]
	}
	return received
}

// trySendBatch attempts the four-wide fast path for one batch of exactly
// four values starting at the current head. Returns false if the batch
// would straddle the end of the buffer, if the four slots aren't all
// EMPTY at their expected positions, or if another producer won the CAS —
// in every case the caller falls back to a single Send.
func (q *Queue[T]) trySendBatch(values []T) bool {
	head := q.head.LoadRelaxed()
	base := head & q.mask
	if q.capacity < 4 || base > q.mask-3 {
		return false
	}

	var seqs [4]uint64
	for i := range seqs {
		seqs[i] = q.buffer[base+uint64(i)].seq.LoadAcquire()
	}
	if !simd4.Eq(seqs, head) {
		return false
	}
	if !q.head.CompareAndSwapRelaxed(head, head+4) {
		return false
	}

	for i := 0; i < 4; i++ {
		s := &q.buffer[base+uint64(i)]
		s.data = values[i]
		s.seq.StoreRelease(head + uint64(i) + 1)
	}
	return true
}

// tryReceiveBatch is the consumer-side mirror of trySendBatch.
func (q *Queue[T]) tryReceiveBatch(out []T) bool {
	tail := q.tail.LoadRelaxed()
	base := tail & q.mask
	if q.capacity < 4 || base > q.mask-3 {
		return false
	}

	var seqs [4]uint64
	for i := range seqs {
		seqs[i] = q.buffer[base+uint64(i)].seq.LoadAcquire()
	}
	if !simd4.Eq(seqs, tail+1) {
		return false
	}
	if !q.tail.CompareAndSwapRelaxed(tail, tail+4) {
		return false
	}

	var zero T
	for i := 0; i < 4; i++ {
		s := &q.buffer[base+uint64(i)]
		out[i] = s.data
		s.data = zero
		s.seq.StoreRelease(tail + uint64(i) + q.capacity)
	}
	return true
}
