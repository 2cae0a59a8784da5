// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mpmc_test

import (
	"errors"
	"testing"

	"github.com/ringlane/mpmc"
)

// TestCapacityRounding covers B1: capacity rounds up to the next power
// of two.
func TestCapacityRounding(t *testing.T) {
	cases := []struct {
		request int
		want    int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{64, 64},
		{1000, 1024},
		{1024, 1024},
	}
	for _, c := range cases {
		q := mpmc.NewQueue[int](c.request)
		if got := q.Cap(); got != c.want {
			t.Errorf("NewQueue[int](%d).Cap() = %d, want %d", c.request, got, c.want)
		}
	}
}

// TestNewQueuePanicsBelowMinimum covers the §7 construction-rejection rule.
func TestNewQueuePanicsBelowMinimum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewQueue[int](0) did not panic")
		}
	}()
	mpmc.NewQueue[int](0)
}

// TestSendReceiveRoundTrip covers R1: send(v); receive() on an empty
// single-consumer queue returns exactly Some(v).
func TestSendReceiveRoundTrip(t *testing.T) {
	q := mpmc.NewQueue[string](4)
	v := "hello"
	if err := q.Send(&v); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got, err := q.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if got != "hello" {
		t.Fatalf("Receive() = %q, want %q", got, "hello")
	}
}

// TestDrainedReceiveLoopTerminates covers R2: repeated receive returns
// empty after exactly head-tail successes.
func TestDrainedReceiveLoopTerminates(t *testing.T) {
	q := mpmc.NewQueue[int](8)
	const n = 5
	for i := 0; i < n; i++ {
		v := i
		if err := q.Send(&v); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}

	for i := 0; i < n; i++ {
		if _, err := q.Receive(); err != nil {
			t.Fatalf("Receive #%d: unexpected %v", i, err)
		}
	}
	if _, err := q.Receive(); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("Receive after drain: got %v, want ErrWouldBlock", err)
	}
}

// TestReceiveEmptyLeavesStateUnchanged covers B4.
func TestReceiveEmptyLeavesStateUnchanged(t *testing.T) {
	q := mpmc.NewQueue[int](4)
	before := q.Len()
	if _, err := q.Receive(); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("Receive on empty: got %v, want ErrWouldBlock", err)
	}
	if after := q.Len(); after != before {
		t.Fatalf("Len changed across failed Receive: before=%d after=%d", before, after)
	}
	if !q.IsEmpty() {
		t.Fatal("IsEmpty() = false after failed Receive on empty queue")
	}
}

// TestFillToCapacityThenFull covers B2: filling exactly cap elements
// succeeds; the (cap+1)-th send returns Full (ErrWouldBlock).
func TestFillToCapacityThenFull(t *testing.T) {
	q := mpmc.NewQueue[int](4)
	for i := 0; i < 4; i++ {
		v := i
		if err := q.Send(&v); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	if !q.IsFull() {
		t.Fatal("IsFull() = false at capacity")
	}

	overflow := 999
	if err := q.Send(&overflow); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("Send on full queue: got %v, want ErrWouldBlock", err)
	}
	if overflow != 999 {
		t.Fatalf("overflow value mutated on failed Send: got %d", overflow)
	}
}

// TestScenarioS1 interleaves sends and receives on a capacity-4 queue:
// after two receives it holds 30, 40 and 50, so 60 fills the fourth slot
// and the next send, 70, is the one refused.
func TestScenarioS1(t *testing.T) {
	q := mpmc.NewQueue[int](4)

	for _, v := range []int{10, 20, 30} {
		v := v
		if err := q.Send(&v); err != nil {
			t.Fatalf("Send(%d): %v", v, err)
		}
	}

	mustReceive := func(want int) {
		t.Helper()
		got, err := q.Receive()
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if got != want {
			t.Fatalf("Receive() = %d, want %d", got, want)
		}
	}

	mustReceive(10)
	mustReceive(20)

	for _, v := range []int{40, 50} {
		v := v
		if err := q.Send(&v); err != nil {
			t.Fatalf("Send(%d): %v", v, err)
		}
	}

	v60 := 60
	if err := q.Send(&v60); err != nil {
		t.Fatalf("Send(60) into the last free slot: %v", err)
	}

	v70 := 70
	if err := q.Send(&v70); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("Send(70) on full queue: got %v, want ErrWouldBlock", err)
	}

	mustReceive(30)
	mustReceive(40)
	mustReceive(50)
	mustReceive(60)

	if _, err := q.Receive(); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("final Receive: got %v, want ErrWouldBlock", err)
	}
}

// TestScenarioS2 mirrors S1 but with a string element type and a
// capacity-2 (rounded) queue, exercising wrap-around on a tiny buffer.
func TestScenarioS2(t *testing.T) {
	q := mpmc.NewQueue[string](2)
	if q.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", q.Cap())
	}

	a, b, c := "a", "b", "c"
	if err := q.Send(&a); err != nil {
		t.Fatalf("Send(a): %v", err)
	}
	if err := q.Send(&b); err != nil {
		t.Fatalf("Send(b): %v", err)
	}
	if err := q.Send(&c); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("Send(c) on full queue: got %v, want ErrWouldBlock", err)
	}

	if got, err := q.Receive(); err != nil || got != "a" {
		t.Fatalf("Receive() = (%q, %v), want (\"a\", nil)", got, err)
	}
	if err := q.Send(&c); err != nil {
		t.Fatalf("Send(c): %v", err)
	}
	if got, err := q.Receive(); err != nil || got != "b" {
		t.Fatalf("Receive() = (%q, %v), want (\"b\", nil)", got, err)
	}
	if got, err := q.Receive(); err != nil || got != "c" {
		t.Fatalf("Receive() = (%q, %v), want (\"c\", nil)", got, err)
	}
	if _, err := q.Receive(); !errors.Is(err, mpmc.ErrWouldBlock) {
		t.Fatalf("final Receive: got %v, want ErrWouldBlock", err)
	}
}

// TestSingleProducerSingleConsumerGlobalFIFO covers S4: with exactly one
// producer and one consumer, per-slot FIFO becomes global FIFO.
func TestSingleProducerSingleConsumerGlobalFIFO(t *testing.T) {
	const n = 10000
	q := mpmc.NewQueue[int](16)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			v := i
			for q.Send(&v) != nil {
			}
		}
	}()

	for i := 0; i < n; i++ {
		var got int
		var err error
		for {
			got, err = q.Receive()
			if err == nil {
				break
			}
		}
		if got != i {
			t.Fatalf("Receive() = %d, want %d (FIFO violated)", got, i)
		}
	}
	<-done
}
