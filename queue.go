// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

import "code.hybscloud.com/atomix"

// pad is cache-line padding used to keep the two position counters, and the
// position counters and the slot array, from sharing a cache line.
type pad [64]byte

// slot is one ring-buffer cell: a sequence counter plus raw storage for
// exactly one T. The sequence alone decides whether data is live; see the
// "Slot protocol" section in doc.go.
type slot[T any] struct {
	seq  atomix.Uint64
	data T
}

// Queue is a bounded, lockless multi-producer multi-consumer ring buffer.
//
// Any number of goroutines may call Send and Receive concurrently. An
// element accepted by a successful Send is delivered to exactly one
// successful Receive, in the order each physical slot is visited (see
// doc.go for the precise FIFO guarantee).
//
// The zero Queue is not usable; construct one with NewQueue or NewAdaptive.
type Queue[T any] struct {
	_        pad
	tail     atomix.Uint64 // consumer position
	_        pad
	head     atomix.Uint64 // producer position
	_        pad
	buffer   []slot[T]
	mask     uint64
	capacity uint64
}

// adaptiveMinCapacity is the smallest physical capacity NewAdaptive will
// hand out: two four-wide batches must fit without ever wrapping the
// buffer on a cold queue.
const adaptiveMinCapacity = 8

func newQueue[T any](n uint64) *Queue[T] {
	buf := make([]slot[T], n)
	for i := range buf {
		buf[i].seq.StoreRelaxed(uint64(i))
	}
	return &Queue[T]{buffer: buf, mask: n - 1, capacity: n}
}

// NewQueue creates a queue whose capacity is the smallest power of two
// greater than or equal to minCapacity. Panics if minCapacity < 1.
func NewQueue[T any](minCapacity int) *Queue[T] {
	if minCapacity < 1 {
		panic("mpmc: capacity must be >= 1")
	}
	return newQueue[T](roundPow2(minCapacity))
}

// NewAdaptive creates a queue sized for the SendMany/ReceiveMany batched
// path: the same power-of-two rounding as NewQueue, but never smaller than
// adaptiveMinCapacity. Panics if minCapacity < 1.
func NewAdaptive[T Word64](minCapacity int) *Queue[T] {
	if minCapacity < 1 {
		panic("mpmc: capacity must be >= 1")
	}
	n := roundPow2(minCapacity)
	if n < adaptiveMinCapacity {
		n = adaptiveMinCapacity
	}
	return newQueue[T](n)
}

// roundPow2 rounds n up to the next power of two, treating n < 1 as 1.
func roundPow2(n int) uint64 {
	if n < 1 {
		return 1
	}
	v := uint64(n) - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// Cap returns the queue's rounded power-of-two capacity.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// Len returns head - tail observed with relaxed loads: an advisory snapshot
// of the number of claimed-but-not-yet-consumed positions. It carries no
// happens-before relationship to any subsequent Send or Receive and may be
// stale by the time the caller reads it, but 0 <= Len() <= Cap() always.
func (q *Queue[T]) Len() int {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	n := int64(head - tail)
	if n < 0 {
		// tail moved past the head value read above in between the loads.
		return 0
	}
	return int(n)
}

// IsEmpty reports whether Len() == 0. Advisory snapshot; see Len.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether Len() == Cap(). Advisory snapshot; see Len.
func (q *Queue[T]) IsFull() bool {
	return q.Len() == int(q.capacity)
}
