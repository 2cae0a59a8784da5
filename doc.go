// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package mpmc provides a bounded, lockless multi-producer multi-consumer
// ring buffer.
//
// Any number of goroutines may call Send and Receive concurrently; neither
// operation ever blocks, sleeps, or allocates on its hot path. Capacity is
// fixed at construction and rounds up to the next power of two.
//
// # Quick start
//
//	q := mpmc.NewQueue[int](1024)
//
//	v := 42
//	if err := q.Send(&v); err != nil {
//	    // queue full — mpmc.IsWouldBlock(err) is true
//	}
//
//	elem, err := q.Receive()
//	if err == nil {
//	    fmt.Println(elem)
//	}
//
// # Slot protocol
//
// Each slot carries a sequence counter seeded to its own index. A producer
// at position p may write slot p&mask only while that slot's sequence
// equals p; a consumer at position p may read it only once the sequence
// equals p+1. The producer's claim (CAS on the head counter), its write,
// and its release (sequence store) happen in that order; the consumer's
// claim, its read, and its release happen symmetrically. The two position
// counters carry no ordering of their own — all synchronization of the
// element itself flows through the per-slot sequence's acquire-load /
// release-store pair. See send.go and receive.go for the classification
// table this implements.
//
// # Adaptive batching
//
// For T constrained to a homogeneous 64-bit primitive (via NewAdaptive),
// SendMany and ReceiveMany opportunistically claim four contiguous slots
// with a single CAS guarded by a four-wide sequence comparison, falling
// back to the single-element path for whatever doesn't fit a batch. The
// batch path is a performance specialization: its absence or failure is
// always indistinguishable, from the caller's point of view, from a loop
// of Send/Receive calls.
//
// # Fairness
//
// There is no fairness guarantee between competing producers, nor between
// competing consumers. Under contention, which goroutine's CAS lands first
// is scheduler- and platform-dependent; no starvation is observed in
// practice, but the protocol makes no formal argument for it. Don't build
// ordering guarantees on top of this beyond per-slot FIFO.
//
// # Dependencies
//
// Position and sequence counters are [code.hybscloud.com/atomix] values
// with memory ordering named explicitly at every call site. Retry loops
// back off with [code.hybscloud.com/spin]. ErrWouldBlock aliases
// [code.hybscloud.com/iox]'s sentinel of the same purpose, for
// errors.Is-compatibility with other queues built on the same stack.
//
// # Race detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but not the happens-before edges established by
// acquire/release orderings on independent atomics. It can report false
// positives on this package's linearizability-sensitive concurrent tests;
// those tests check [RaceEnabled] and skip under -race.
package mpmc
