// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc

// Producer is a send-only view of a Queue. It carries no state of its own
// beyond the queue it wraps; any number of Producer values may coexist and
// all forward to the same underlying Queue.
type Producer[T any] struct {
	q *Queue[T]
}

// AsProducer returns a send-only handle onto q.
func (q *Queue[T]) AsProducer() Producer[T] {
	return Producer[T]{q: q}
}

// Send forwards to the wrapped queue's Send.
func (p Producer[T]) Send(value *T) error {
	return p.q.Send(value)
}

// Cap forwards to the wrapped queue's Cap.
func (p Producer[T]) Cap() int {
	return p.q.Cap()
}

// Consumer is a receive-only view of a Queue. Like Producer, it carries no
// state of its own; any number of Consumer values may coexist.
type Consumer[T any] struct {
	q *Queue[T]
}

// AsConsumer returns a receive-only handle onto q.
func (q *Queue[T]) AsConsumer() Consumer[T] {
	return Consumer[T]{q: q}
}

// Receive forwards to the wrapped queue's Receive.
func (c Consumer[T]) Receive() (T, error) {
	return c.q.Receive()
}

// Cap forwards to the wrapped queue's Cap.
func (c Consumer[T]) Cap() int {
	return c.q.Cap()
}
