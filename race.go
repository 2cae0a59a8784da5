// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpmc

// RaceEnabled is true when the race detector is active. Tests that check
// linearizability across independently-ordered atomics use it to skip
// themselves, since the race detector cannot observe the happens-before
// edges those orderings establish and would otherwise report a false
// positive.
const RaceEnabled = true
